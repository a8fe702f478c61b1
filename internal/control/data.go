package control

import (
	"fmt"
	"os"
	"path"
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/ja-he/memeplan/internal/config"
)

// EnvData represents the environment data.
type EnvData struct {
	BaseDirPath string
	APIBaseURL  string
}

// NewEnvData reads the environment data from the process environment.
//
// The base directory is $MEMEPLAN_HOME, defaulting to
// $HOME/.config/memeplan; $MEMEPLAN_API_URL, if set, overrides the configured
// API base URL.
func NewEnvData() EnvData {
	var envData EnvData

	memeplanHome := os.Getenv("MEMEPLAN_HOME")
	if memeplanHome == "" {
		envData.BaseDirPath = path.Join(os.Getenv("HOME"), ".config", "memeplan")
	} else {
		envData.BaseDirPath = strings.TrimRight(memeplanHome, "/")
	}

	envData.APIBaseURL = os.Getenv("MEMEPLAN_API_URL")

	return envData
}

// ConfigPath is the path of the config file.
func (e EnvData) ConfigPath() string { return path.Join(e.BaseDirPath, "config.yaml") }

// DraftsPath is the directory of locally stored drafts.
func (e EnvData) DraftsPath() string { return path.Join(e.BaseDirPath, "drafts") }

// LoadConfig reads the config file and merges it over the defaults for the
// given theme. A missing config file is not an error.
func LoadConfig(envData EnvData, theme config.ColorschemeType) (config.Config, error) {
	yamlData, err := os.ReadFile(envData.ConfigPath())
	if err != nil {
		if !os.IsNotExist(err) {
			return config.Config{}, fmt.Errorf("can't read config file '%s' (%w)", envData.ConfigPath(), err)
		}
		log.Debug().Str("file", envData.ConfigPath()).Msg("no config file, using defaults")
		yamlData = []byte{}
	}

	configData, err := config.ParseConfigAugmentDefaults(theme, yamlData)
	if err != nil {
		return config.Config{}, fmt.Errorf("can't parse config file '%s' (%w)", envData.ConfigPath(), err)
	}

	if envData.APIBaseURL != "" {
		configData.API.BaseURL = envData.APIBaseURL
	}
	return configData, nil
}

// ControlData is the TUI's state outside of the editor state itself, i.E.
// which overlays are shown and the latest message for the status bar.
type ControlData struct {
	EnvData EnvData

	ShowLog  bool
	ShowHelp bool

	messageMtx     sync.RWMutex
	message        string
	messageIsError bool
}

// NewControlData returns control data for the given environment.
func NewControlData(envData EnvData) *ControlData {
	return &ControlData{EnvData: envData}
}

// Notify sets an informational status message.
func (d *ControlData) Notify(msg string) { d.setMessage(msg, false) }

// NotifyError sets an error status message.
func (d *ControlData) NotifyError(msg string) { d.setMessage(msg, true) }

// ClearMessage clears the status message.
func (d *ControlData) ClearMessage() { d.setMessage("", false) }

func (d *ControlData) setMessage(msg string, isError bool) {
	d.messageMtx.Lock()
	defer d.messageMtx.Unlock()
	d.message, d.messageIsError = msg, isError
}

// Message returns the status message and whether it reports an error.
func (d *ControlData) Message() (msg string, isError bool) {
	d.messageMtx.RLock()
	defer d.messageMtx.RUnlock()
	return d.message, d.messageIsError
}
