package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath  string
	ConfigFound bool
	AppDataDir  string
	BankName    string
	LogLevel    string
	LogFormat   string
	LogFile     string
	ShellMode   string
}

func RenderSystemInfo(data SystemInfoItem) error {
	configStatus := pterm.Green("Found")
	if !data.ConfigFound {
		configStatus = pterm.Red("Not Found (using defaults)")
	}

	logFile := data.LogFile
	if logFile == "" {
		logFile = "(stderr)"
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Configuration Status", configStatus},
		{"AppData Directory", data.AppDataDir},
		{"Bank Name", data.BankName},
		{"Log Level", data.LogLevel},
		{"Log Format", data.LogFormat},
		{"Log File", logFile},
		{"Shell Mode", data.ShellMode},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
