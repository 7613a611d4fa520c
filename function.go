// Package vcbriefing is the Cloud Functions entry point for the briefing service.
package vcbriefing

import (
	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/pep299/vc-briefing/internal/transport/server"
)

// FunctionName is the target name the function is registered under
const FunctionName = "GenerateBrief"

func init() {
	functions.HTTP(FunctionName, server.HandleRequest)
}
