package towerapi

import (
	"encoding/json"
	"fmt"
	"strings"

	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/core/domain/model/drone"
	"missionctl/internal/core/domain/model/facility"
	"missionctl/internal/core/domain/model/kernel"
)

// DroneDTO is a drone row as the tower backend serves it.
type DroneDTO struct {
	DroneID         restclient.Text  `json:"drone_id"`
	DroneName       restclient.Text  `json:"drone_name"`
	Model           restclient.Text  `json:"model"`
	DroneType       restclient.Text  `json:"drone_type"`
	BatteryType     restclient.Text  `json:"battery_type"`
	BatteryCapacity restclient.Text  `json:"battery_capacity"`
	SourceLat       restclient.Float `json:"source_lat"`
	SourceLng       restclient.Float `json:"source_lng"`
	Gripper01       restclient.Text  `json:"gripper_01"`
	Gripper02       restclient.Text  `json:"gripper_02"`
	Gripper03       restclient.Text  `json:"gripper_03"`
}

func DomainToDroneSource(loc kernel.Location) SourceCoordinatesDTO {
	return SourceCoordinatesDTO{SourceLat: loc.Lat(), SourceLng: loc.Lng()}
}

// DtoToDomainDrone builds a drone. A source with a missing or out-of-range
// coordinate is treated as not set, which makes the operator enter one.
func DtoToDomainDrone(dto DroneDTO) (*drone.Drone, error) {
	var source *kernel.Location
	if dto.SourceLat.Valid && dto.SourceLng.Valid {
		if loc, err := kernel.NewLocation(dto.SourceLat.Value, dto.SourceLng.Value); err == nil {
			source = &loc
		}
	}

	attrs := drone.Attributes{
		Name:    dto.DroneName.String(),
		Model:   dto.Model.String(),
		Type:    dto.DroneType.String(),
		Battery: strings.TrimSpace(dto.BatteryType.String() + " " + dto.BatteryCapacity.String()),
	}
	grippers := []string{dto.Gripper01.String(), dto.Gripper02.String(), dto.Gripper03.String()}

	return drone.NewDrone(dto.DroneID.String(), attrs, source, grippers)
}

type SourceCoordinatesDTO struct {
	SourceLat float64 `json:"source_lat"`
	SourceLng float64 `json:"source_lng"`
}

type CoordinatesDTO struct {
	Latitude  restclient.Float `json:"latitude"`
	Longitude restclient.Float `json:"longitude"`
}

func (c *CoordinatesDTO) location() (*kernel.Location, error) {
	if c == nil || !c.Latitude.Valid || !c.Longitude.Valid {
		return nil, nil //nolint:nilnil // absent coordinates are not an error
	}
	loc, err := kernel.NewLocation(c.Latitude.Value, c.Longitude.Value)
	if err != nil {
		return nil, err
	}
	return &loc, nil
}

// DestinationDTO is the answer of GET /drone-destination/{id}.
type DestinationDTO struct {
	DestinationLat  restclient.Float `json:"destination_lat"`
	DestinationLng  restclient.Float `json:"destination_lng"`
	WarehouseName   restclient.Text  `json:"warehouse_name"`
	DDTs            []FacilityDTO    `json:"ddts"`
	WarehouseCoords *CoordinatesDTO  `json:"warehouse_coords"`
}

// FacilityDTO is a DDT row. Its rack_NN columns are dynamic, so the row is
// kept whole and read column by column.
type FacilityDTO struct {
	ID             restclient.Text `json:"id"`
	Name           restclient.Text `json:"name"`
	Status         restclient.Text `json:"status"`
	TotalRacks     int             `json:"total_racks"`
	AvailableRacks []RackDTO       `json:"available_racks"`

	columns map[string]json.RawMessage
}

type RackDTO struct {
	RackNumber int    `json:"rack_number"`
	RackName   string `json:"rack_name"`
	RackColumn string `json:"rack_column"`
}

func (f *FacilityDTO) UnmarshalJSON(data []byte) error {
	type plain FacilityDTO
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	var columns map[string]json.RawMessage
	if err := json.Unmarshal(data, &columns); err != nil {
		return err
	}
	*f = FacilityDTO(p)
	f.columns = columns
	return nil
}

// placeholderOccupant stands in for the package of a rack the backend lists
// as taken without naming what is inside.
const placeholderOccupant = "occupied"

// occupancy reads the rack_NN columns: a non-null column holds the package
// stored there. When available_racks is present it is authoritative for racks
// whose column is absent.
func (f FacilityDTO) occupancy() (map[facility.RackKey]string, error) {
	var listed map[facility.RackKey]bool
	if f.AvailableRacks != nil {
		listed = make(map[facility.RackKey]bool, len(f.AvailableRacks))
		for _, r := range f.AvailableRacks {
			listed[facility.RackKey(r.RackColumn)] = true
		}
	}

	occupied := make(map[facility.RackKey]string)
	for n := 1; n <= f.TotalRacks; n++ {
		key, err := facility.RackKeyFromNumber(n)
		if err != nil {
			return nil, err
		}

		raw, present := f.columns[key.String()]
		if present {
			var occupant restclient.Text
			if err := json.Unmarshal(raw, &occupant); err != nil {
				return nil, fmt.Errorf("%s: %w", key, err)
			}
			if occupant != "" {
				occupied[key] = occupant.String()
			}
			continue
		}
		if listed != nil && !listed[key] {
			occupied[key] = placeholderOccupant
		}
	}
	return occupied, nil
}

func DtoToDomainFacility(dto FacilityDTO) (*facility.Facility, error) {
	occupied, err := dto.occupancy()
	if err != nil {
		return nil, err
	}
	return facility.NewFacility(
		dto.ID.String(),
		dto.Name.String(),
		dto.TotalRacks,
		facility.ParseStatus(dto.Status.String()),
		occupied,
	)
}

type LaunchRequestDTO struct {
	PackageID  string  `json:"package_id"`
	DDTName    string  `json:"ddt_name"`
	RackColumn string  `json:"rack_column"`
	Latitude   float64 `json:"latitude"`
	Longitude  float64 `json:"longitude"`
}

type LaunchResponseDTO struct {
	Status       restclient.Text `json:"status"`
	Message      restclient.Text `json:"message"`
	PackageID    restclient.Text `json:"package_id"`
	ControlKey   restclient.Text `json:"control_key"`
	SelectedRack restclient.Text `json:"selected_rack"`
}

type PackageStatusDTO struct {
	PackageID    restclient.Text `json:"package_id"`
	Status       restclient.Text `json:"status"`
	EmailSent    bool            `json:"email_sent"`
	SelectedRack restclient.Text `json:"selected_rack"`
}

type OtpDataDTO struct {
	Status    restclient.Text `json:"status"`
	PackageID restclient.Text `json:"package_id"`
	MailID    restclient.Text `json:"mail_id"`
	OTP       restclient.Text `json:"otp"`
	Rack      restclient.Text `json:"rack"`
}

type ResetRequestDTO struct {
	ControlKey string `json:"control_key"`
}

type PickupRequestDTO struct {
	DDTName    string `json:"ddt_name"`
	RackColumn string `json:"rack_column"`
}
