package cmd

import (
	"fmt"
	"log/slog"

	httpin "missionctl/internal/adapters/in/http"
	"missionctl/internal/adapters/out/emailjs"
	"missionctl/internal/adapters/out/monitorapi"
	"missionctl/internal/adapters/out/restclient"
	"missionctl/internal/adapters/out/towerapi"
	"missionctl/internal/core/application/missioncontrol"
	"missionctl/internal/core/application/monitoring"
	"missionctl/internal/core/application/usecases/commands"
	"missionctl/internal/core/application/usecases/queries"
	"missionctl/internal/jobs"
)

type CompositionRoot struct {
	config Config
	logger *slog.Logger

	sessions *missioncontrol.Registry
	views    *monitoring.Registry
}

// NewCompositionRoot builds the backend adapters and the live session and
// view tables. Nothing is contacted over the network until an operator acts.
func NewCompositionRoot(config Config, logger *slog.Logger) (*CompositionRoot, error) {
	towerClient, err := restclient.New(config.TowerAPIURL, config.HTTPClientTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("tower api client: %w", err)
	}
	tower, err := towerapi.NewGateway(towerClient, logger)
	if err != nil {
		return nil, err
	}

	monitorClient, err := restclient.New(config.MonitorAPIURL, config.HTTPClientTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("monitor api client: %w", err)
	}
	monitor, err := monitorapi.NewGateway(monitorClient, logger)
	if err != nil {
		return nil, err
	}

	mailClient, err := restclient.New(config.EmailJSURL, config.HTTPClientTimeout, logger)
	if err != nil {
		return nil, fmt.Errorf("emailjs client: %w", err)
	}
	mailer, err := emailjs.NewMailer(mailClient, config.EmailJS(), logger)
	if err != nil {
		return nil, fmt.Errorf("emailjs mailer: %w", err)
	}

	sessions, err := missioncontrol.NewRegistry(missioncontrol.Dependencies{
		Drones:       tower,
		Missions:     tower,
		Mailer:       mailer,
		PollInterval: config.StatusPollInterval,
		Logger:       logger,
	}, config.SessionLimit)
	if err != nil {
		return nil, err
	}

	views, err := monitoring.NewRegistry(monitoring.Dependencies{
		Telemetry:    monitor,
		PollInterval: config.TelemetryPollInterval,
		Logger:       logger,
	}, config.ViewLimit)
	if err != nil {
		sessions.CloseAll()
		return nil, err
	}

	return &CompositionRoot{
		config:   config,
		logger:   logger,
		sessions: sessions,
		views:    views,
	}, nil
}

func (c *CompositionRoot) CreateServer() *httpin.Server {
	return httpin.NewServer(httpin.CommandHandlers{
		CreateSession:           commands.NewCreateSessionCommandHandler(c.sessions),
		CloseSession:            commands.NewCloseSessionCommandHandler(c.sessions),
		SelectDrone:             commands.NewSelectDroneCommandHandler(c.sessions),
		RequestCoordinateUpdate: commands.NewRequestCoordinateUpdateCommandHandler(c.sessions),
		SubmitCoordinates:       commands.NewSubmitCoordinatesCommandHandler(c.sessions),
		CancelPrompt:            commands.NewCancelPromptCommandHandler(c.sessions),
		SelectFacility:          commands.NewSelectFacilityCommandHandler(c.sessions),
		SelectRack:              commands.NewSelectRackCommandHandler(c.sessions),
		SelectPackage:           commands.NewSelectPackageCommandHandler(c.sessions),
		LaunchMission:           commands.NewLaunchMissionCommandHandler(c.sessions),
		ResetMission:            commands.NewResetMissionCommandHandler(c.sessions),
		ResendOtp:               commands.NewResendOtpCommandHandler(c.sessions),
		ConfirmPickup:           commands.NewConfirmPickupCommandHandler(c.sessions),
		OpenView:                commands.NewOpenViewCommandHandler(c.views),
		SwitchViewDrone:         commands.NewSwitchViewDroneCommandHandler(c.views),
		CloseView:               commands.NewCloseViewCommandHandler(c.views),
		ControlDrone:            commands.NewControlDroneCommandHandler(c.views),
	}, httpin.QueryHandlers{
		GetSession:   queries.NewGetSessionQueryHandler(c.sessions),
		ListDrones:   queries.NewListDronesQueryHandler(c.sessions),
		GetView:      queries.NewGetViewQueryHandler(c.views),
		GetCameraURL: queries.NewGetCameraURLQueryHandler(c.views),
		StreamView:   queries.NewStreamViewQueryHandler(c.views),
	}, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		commands.NewReapIdleSessionsCommandHandler(c.sessions),
		commands.NewReapIdleViewsCommandHandler(c.views),
		c.config.SessionIdleTimeout,
		c.logger,
	)
}

// Close stops every poller of every live session and view.
func (c *CompositionRoot) Close() {
	c.views.CloseAll()
	c.sessions.CloseAll()
}
