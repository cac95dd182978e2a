package controller

import (
	"encoding/json"
	"log/slog"

	shell "github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/domain"
	"github.com/Shreya020904/Planner-ui/internal/pkg/shell/application/usecase"
)

// DeviceNotifier delivers a frame to every socket open on a device.
type DeviceNotifier interface {
	NotifyDevice(deviceID string, payload []byte) int
}

type shellFrame struct {
	Type        string      `json:"type"`
	Theme       shell.Theme `json:"theme"`
	SidebarOpen bool        `json:"sidebar_open"`
}

// PushToDevice returns a store observer forwarding each change as a
// "shell" frame to the device's open websockets.
func PushToDevice(n DeviceNotifier, logger *slog.Logger) usecase.Observer {
	if logger == nil {
		logger = slog.Default()
	}
	return func(deviceID string, st shell.State) {
		payload, err := json.Marshal(shellFrame{Type: "shell", Theme: st.Theme, SidebarOpen: st.SidebarOpen})
		if err != nil {
			logger.Error("encode shell frame", slog.String("error", err.Error()))
			return
		}
		n.NotifyDevice(deviceID, payload)
	}
}
