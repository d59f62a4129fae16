package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for CoordinatePromptAction.
const (
	CoordinatePromptActionSelect CoordinatePromptAction = "select"
	CoordinatePromptActionUpdate CoordinatePromptAction = "update"
)

// Defines values for FacilityStatus.
const (
	FacilityStatusActive   FacilityStatus = "Active"
	FacilityStatusInactive FacilityStatus = "Inactive"
	FacilityStatusUnknown  FacilityStatus = "Unknown"
)

// Defines values for MissionStatus.
const (
	MissionStatusReady      MissionStatus = "Ready"
	MissionStatusProcessing MissionStatus = "Processing"
	MissionStatusDelivered  MissionStatus = "Delivered"
	MissionStatusFailed     MissionStatus = "Failed"
)

// Defines values for MissionDispatch.
const (
	MissionDispatchNotDispatched   MissionDispatch = "NotDispatched"
	MissionDispatchDispatched      MissionDispatch = "Dispatched"
	MissionDispatchDispatchFailed  MissionDispatch = "DispatchFailed"
	MissionDispatchResendRequested MissionDispatch = "ResendRequested"
)

// CameraUrl defines model for CameraUrl.
type CameraUrl struct {
	CameraUrl string `json:"camera_url"`
}

// CommandResult defines model for CommandResult.
type CommandResult struct {
	Message string `json:"message"`
}

// CoordinatePrompt defines model for CoordinatePrompt.
type CoordinatePrompt struct {
	Action     CoordinatePromptAction `json:"action"`
	DroneId    string                 `json:"drone_id"`
	PrefillLat *string                `json:"prefill_lat,omitempty"`
	PrefillLng *string                `json:"prefill_lng,omitempty"`
}

// CoordinatePromptAction defines model for CoordinatePrompt.Action.
type CoordinatePromptAction string

// CreateSessionRequest defines model for CreateSessionRequest.
type CreateSessionRequest struct {
	AutoSelectDroneId *string `json:"auto_select_drone_id,omitempty"`
	SelectedRack      *string `json:"selected_rack,omitempty"`
}

// Drone defines model for Drone.
type Drone struct {
	Battery  *string   `json:"battery,omitempty"`
	Grippers []string  `json:"grippers"`
	Id       string    `json:"id"`
	Model    *string   `json:"model,omitempty"`
	Name     string    `json:"name"`
	Packages []string  `json:"packages"`
	Source   *Location `json:"source,omitempty"`
	Type     *string   `json:"type,omitempty"`
}

// DroneRef defines model for DroneRef.
type DroneRef struct {
	DroneId string `json:"drone_id"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Facility defines model for Facility.
type Facility struct {
	AvailableCount int            `json:"available_count"`
	AvailableRacks []string       `json:"available_racks"`
	Id             *string        `json:"id,omitempty"`
	Name           string         `json:"name"`
	Occupied       []RackSlot     `json:"occupied"`
	Status         FacilityStatus `json:"status"`
	TotalRacks     int            `json:"total_racks"`
}

// FacilityStatus defines model for Facility.Status.
type FacilityStatus string

// Geometry defines model for Geometry.
type Geometry struct {
	Destination *Location `json:"destination,omitempty"`
	DroneId     string    `json:"drone_id"`
	DroneName   *string   `json:"drone_name,omitempty"`
	LastKnown   *Location `json:"last_known,omitempty"`
	Source      *Location `json:"source,omitempty"`
	Warehouse   *Location `json:"warehouse,omitempty"`
}

// Location defines model for Location.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Mission defines model for Mission.
type Mission struct {
	ControlKey *string         `json:"control_key,omitempty"`
	Dispatch   MissionDispatch `json:"dispatch"`
	Epoch      int64           `json:"epoch"`
	Facility   *string         `json:"facility,omitempty"`
	Otp        *Otp            `json:"otp,omitempty"`
	OtpError   *string         `json:"otp_error,omitempty"`
	PackageId  *string         `json:"package_id,omitempty"`
	RackColumn *string         `json:"rack_column,omitempty"`
	RackLabel  *string         `json:"rack_label,omitempty"`
	Status     MissionStatus   `json:"status"`
}

// MissionDispatch defines model for Mission.Dispatch.
type MissionDispatch string

// MissionStatus defines model for Mission.Status.
type MissionStatus string

// Otp defines model for Otp.
type Otp struct {
	Code       string  `json:"code"`
	RackColumn *string `json:"rack_column,omitempty"`
	RackLabel  string  `json:"rack_label"`
	Recipient  string  `json:"recipient"`
}

// RackSlot defines model for RackSlot.
type RackSlot struct {
	PackageId  string `json:"package_id"`
	RackColumn string `json:"rack_column"`
	RackLabel  string `json:"rack_label"`
}

// SelectFacilityRequest defines model for SelectFacilityRequest.
type SelectFacilityRequest struct {
	Name string `json:"name"`
}

// SelectPackageRequest defines model for SelectPackageRequest.
type SelectPackageRequest struct {
	PackageId string `json:"package_id"`
}

// SelectRackRequest defines model for SelectRackRequest.
type SelectRackRequest struct {
	RackColumn string `json:"rack_column"`
}

// Session defines model for Session.
type Session struct {
	Destination      *Location          `json:"destination,omitempty"`
	Drones           []Drone            `json:"drones"`
	Facilities       []Facility         `json:"facilities"`
	Id               openapi_types.UUID `json:"id"`
	LastActive       time.Time          `json:"last_active"`
	Mission          Mission            `json:"mission"`
	Notice           *string            `json:"notice,omitempty"`
	Prompt           *CoordinatePrompt  `json:"prompt,omitempty"`
	SelectedDrone    *Drone             `json:"selected_drone,omitempty"`
	SelectedFacility *string            `json:"selected_facility,omitempty"`
	SelectedRack     *string            `json:"selected_rack,omitempty"`
	Warehouse        *Location          `json:"warehouse,omitempty"`
}

// SubmitCoordinatesRequest defines model for SubmitCoordinatesRequest.
type SubmitCoordinatesRequest struct {
	SourceLat string `json:"source_lat"`
	SourceLng string `json:"source_lng"`
}

// View defines model for View.
type View struct {
	DroneId    string             `json:"drone_id"`
	Generation int64              `json:"generation"`
	Geometry   *Geometry          `json:"geometry,omitempty"`
	Id         openapi_types.UUID `json:"id"`

	// Parameters Live flight parameters; unknown values are "N/A".
	Parameters      map[string]interface{} `json:"parameters"`
	ParametersError *string                `json:"parameters_error,omitempty"`
	GeometryError   *string                `json:"geometry_error,omitempty"`
	UpdatedAt       *time.Time             `json:"updated_at,omitempty"`
	Viewport        *Viewport              `json:"viewport,omitempty"`
}

// Viewport defines model for Viewport.
type Viewport struct {
	Center Location `json:"center"`
	Zoom   int      `json:"zoom"`
}

// SessionId defines model for SessionId.
type SessionId = openapi_types.UUID

// ViewId defines model for ViewId.
type ViewId = openapi_types.UUID

// DroneId defines model for DroneId.
type DroneId = string

// SendDroneCommandParamsCommand defines parameters for SendDroneCommand.
type SendDroneCommandParamsCommand string

// Defines values for SendDroneCommandParamsCommand.
const (
	Abort   SendDroneCommandParamsCommand = "abort"
	Hover   SendDroneCommandParamsCommand = "hover"
	Land    SendDroneCommandParamsCommand = "land"
	Launch  SendDroneCommandParamsCommand = "launch"
	Rtl     SendDroneCommandParamsCommand = "rtl"
	Stop    SendDroneCommandParamsCommand = "stop"
	Takeoff SendDroneCommandParamsCommand = "takeoff"
)

// CreateSessionJSONRequestBody defines body for CreateSession for application/json ContentType.
type CreateSessionJSONRequestBody = CreateSessionRequest

// SubmitCoordinatesJSONRequestBody defines body for SubmitCoordinates for application/json ContentType.
type SubmitCoordinatesJSONRequestBody = SubmitCoordinatesRequest

// SelectFacilityJSONRequestBody defines body for SelectFacility for application/json ContentType.
type SelectFacilityJSONRequestBody = SelectFacilityRequest

// SelectRackJSONRequestBody defines body for SelectRack for application/json ContentType.
type SelectRackJSONRequestBody = SelectRackRequest

// SelectPackageJSONRequestBody defines body for SelectPackage for application/json ContentType.
type SelectPackageJSONRequestBody = SelectPackageRequest

// OpenViewJSONRequestBody defines body for OpenView for application/json ContentType.
type OpenViewJSONRequestBody = DroneRef

// SwitchViewDroneJSONRequestBody defines body for SwitchViewDrone for application/json ContentType.
type SwitchViewDroneJSONRequestBody = DroneRef
