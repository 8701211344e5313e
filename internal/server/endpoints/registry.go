package endpoints

import (
	"github.com/seadex/seadex/internal/api"
)

// All returns all endpoint instances.
func All() []api.Endpoint {
	return []api.Endpoint{
		// Health endpoints
		&HealthEndpoint{},
		&ReadyEndpoint{},

		// Recognition endpoints
		&RecognizeEndpoint{},
		&BatchRecognizeEndpoint{},
		&GetRecognitionEndpoint{},

		// Record history endpoints
		&ListRecordsEndpoint{},
		&DeleteRecordsEndpoint{},
		&ExportRecordsEndpoint{},

		// Stored image serving
		&UploadsEndpoint{},

		// Call statistics
		&StatsEndpoint{},
	}
}

// RecognitionCommands returns endpoints for recognition operations.
// This groups them under the "recognitions" subcommand.
func RecognitionCommands() []api.Endpoint {
	return []api.Endpoint{
		&RecognizeEndpoint{},
		&BatchRecognizeEndpoint{},
		&GetRecognitionEndpoint{},
	}
}

// ServerCommands returns endpoints whose commands sit directly under "api":
// server-level probes and statistics.
func ServerCommands() []api.Endpoint {
	return []api.Endpoint{
		&HealthEndpoint{},
		&ReadyEndpoint{},
		&StatsEndpoint{},
	}
}

// RecordCommands returns endpoints for record history operations.
// This groups them under the "records" subcommand.
func RecordCommands() []api.Endpoint {
	return []api.Endpoint{
		&ListRecordsEndpoint{},
		&DeleteRecordsEndpoint{},
		&ExportRecordsEndpoint{},
	}
}
