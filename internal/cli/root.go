package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sfkleach/decisions/internal/branding"
	"github.com/sfkleach/decisions/internal/config"
	"github.com/sfkleach/decisions/internal/prompt"
	"github.com/sfkleach/decisions/internal/record"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

// Filesystem and terminal seams, replaced in tests.
var (
	fsys     afero.Fs        = afero.NewOsFs()
	prompter prompt.Prompter = prompt.NewSurvey()
)

var (
	rootInit        bool
	rootAdd         string
	rootInteractive bool
	rootDir         string
)

// recordsDir is resolved once per invocation by loadProject.
var recordsDir string

func init() {
	rootCmd.Flags().BoolVar(&rootInit, "init", false, "Create the records directory and write the decision template")
	rootCmd.Flags().StringVar(&rootAdd, "add", "", "Add a new decision record with the given `TOPIC`")
	rootCmd.Flags().BoolVarP(&rootInteractive, "interactive", "i", false, "Prompt for the topic when --add is not given")
	rootCmd.PersistentFlags().StringVar(&rootDir, "dir", "", "Records directory (default: records_dir from "+branding.ConfigFile()+", or "+branding.RecordsDir()+")")
}

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` keeps numbered decision records in a documentation tree.

  ` + branding.CLIName() + ` --init               write ` + branding.RecordsDir() + `/` + branding.TemplateName() + `
  ` + branding.CLIName() + ` --add "Adopt gRPC"   create ` + branding.RecordsDir() + `/0000-adopt-grpc/0000-adopt-grpc.md

Both flags may be combined; --init runs first.`,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: loadProject,
	RunE:              runRoot,
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date
	err := rootCmd.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return err
}

// loadProject reads the project config from the working directory, enforces
// require_version and resolves the records directory.
func loadProject(cmd *cobra.Command, args []string) error {
	if cmd.Name() == "version" {
		return nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("getting current directory: %w", err)
	}
	if err := config.Load(cwd); err != nil {
		return err
	}
	if err := config.CheckVersion(buildVersion, config.Get(config.KeyRequireVersion)); err != nil {
		return err
	}

	switch {
	case rootDir == "":
		recordsDir = config.RecordsDir()
	case filepath.IsAbs(rootDir):
		recordsDir = rootDir
	default:
		recordsDir = filepath.Join(cwd, rootDir)
	}
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if !rootInit && rootAdd == "" && !rootInteractive {
		return cmd.Help()
	}

	if rootInit {
		if err := runInit(cmd); err != nil {
			return err
		}
	}

	topic := rootAdd
	if topic == "" && rootInteractive {
		var err error
		topic, err = prompter.Topic(cmd.Context())
		if err != nil {
			return fmt.Errorf("reading topic: %w", err)
		}
	}
	if topic == "" {
		return nil
	}
	return runAdd(cmd, topic)
}

func newManager(cmd *cobra.Command) *record.Manager {
	return record.NewManager(fsys, recordsDir, record.WithWarnings(cmd.ErrOrStderr()))
}

// displayPath shortens p relative to the working directory when possible.
func displayPath(p string) string {
	cwd, err := os.Getwd()
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(cwd, p)
	if err != nil || strings.HasPrefix(rel, "..") {
		return p
	}
	return rel
}
