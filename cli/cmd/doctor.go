package cmd

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/world-monitor/desktop/cli/render"
	"github.com/world-monitor/desktop/platform"
	"github.com/world-monitor/desktop/sidecar"
	"github.com/world-monitor/desktop/types"
)

// DoctorResponse is the diagnosis report for the doctor command.
type DoctorResponse struct {
	BuildMode    string `json:"build_mode"`
	ScriptPath   string `json:"script_path"`
	ScriptExists bool   `json:"script_exists"`
	ResourceRoot string `json:"resource_root"`
	NodeBinary   string `json:"node_binary"`
	NodeFound    bool   `json:"node_found"`
	OverrideSet  bool   `json:"override_set"`
	Port         string `json:"port"`
	LogDir       string `json:"log_dir"`
	DataDir      string `json:"data_dir"`
}

// DoctorCommand returns the doctor command. It performs the same path
// resolution and runtime discovery a start would, without spawning
// anything, so an operator can see why a launch fails.
func DoctorCommand() *cli.Command {
	return &cli.Command{
		Name:   "doctor",
		Usage:  "Diagnose sidecar launch preconditions (read-only)",
		Flags:  append(ReadOnlyFlags(), LayoutFlags()...),
		Action: doctorAction,
	}
}

func doctorAction(c *cli.Context) error {
	r, err := render.NewRenderer(c)
	if err != nil {
		return err
	}
	s, err := resolveSettings(c)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	paths := sidecar.ResolvePaths(s.Mode, s.SourceDir, s.ResourceDir)

	override := sidecar.OverrideFromEnv()
	if override == "" {
		override = s.NodeBin
	}
	nodeBin, found := sidecar.Locate(platform.Detect(), override)

	_, statErr := os.Stat(paths.Script)
	resp := DoctorResponse{
		BuildMode:    string(s.Mode),
		ScriptPath:   paths.Script,
		ScriptExists: statErr == nil,
		ResourceRoot: paths.ResourceRoot,
		NodeBinary:   nodeBin,
		NodeFound:    found,
		OverrideSet:  sidecar.OverrideFromEnv() != "",
		Port:         types.LocalAPIPort,
		LogDir:       s.LogDir,
		DataDir:      s.DataDir,
	}
	return r.Render(resp)
}
