package coremain

import (
	"fmt"
	"io"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/pmkol/slist/mlog"
	"github.com/pmkol/slist/pkg/list"
	"github.com/pmkol/slist/pkg/script"
)

type runFlags struct {
	c      string
	output string
}

var rootCmd = &cobra.Command{
	Use: "slist",
}

func init() {
	rf := new(runFlags)
	runCmd := &cobra.Command{
		Use:   "run [-c script_file] [-o text|yaml]",
		Short: "Apply a list script.",
		RunE: func(cmd *cobra.Command, args []string) error {
			return RunScript(rf, cmd.OutOrStdout())
		},
		DisableFlagsInUseLine: true,
		SilenceUsage:          true,
	}
	rootCmd.AddCommand(runCmd)
	fs := runCmd.Flags()
	fs.StringVarP(&rf.c, "config", "c", "", "script file")
	fs.StringVarP(&rf.output, "output", "o", "text", "output format, text or yaml")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "demo",
		Short: "Walk through the list operations on a small int list.",
		Run: func(cmd *cobra.Command, args []string) {
			Demo(cmd.OutOrStdout())
		},
	})
}

func AddSubCmd(c *cobra.Command) {
	rootCmd.AddCommand(c)
}

func Run() error {
	return rootCmd.Execute()
}

func RunScript(rf *runFlags, w io.Writer) error {
	switch rf.output {
	case "text", "yaml":
	default:
		return fmt.Errorf("invalid output format %q", rf.output)
	}

	cfg, fileUsed, err := loadConfig(rf.c)
	if err != nil {
		return fmt.Errorf("fail to load script, %w", err)
	}

	if err := mergeInclude(cfg, 0, []string{fileUsed}); err != nil {
		return fmt.Errorf("failed to load included script, %w", err)
	}

	lg, err := mlog.NewLogger(&cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer lg.Sync()

	lg.Info("running script", zap.String("file", fileUsed), zap.Int("ops", len(cfg.Ops)))
	r := script.NewRunner(lg)
	res, err := r.Run(cfg.Ops)
	if err != nil {
		return err
	}
	lg.Info("script finished", zap.Int("size", r.List().Len()))

	if rf.output == "yaml" {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	_, err = fmt.Fprintln(w, r.List().String())
	return err
}

// Demo prints each step of a short walkthrough of the list operations.
func Demo(w io.Writer) {
	l := list.New[int]()

	step := func() {
		fmt.Fprintln(w, l)
		fmt.Fprintf(w, "Size: %d\n", l.Len())
	}

	l.Append(10).Append(20).Append(30)
	step()
	l.Prepend(5)
	step()
	l.InsertAt(2, 15)
	step()
	l.RemoveAt(3)
	step()

	if i, ok := l.Find(15); ok {
		fmt.Fprintf(w, "Index of 15: %d\n", i)
	}
	if n, ok := l.At(2); ok {
		fmt.Fprintf(w, "Element at 2: %d\n", n.Value)
	}
	fmt.Fprintf(w, "Contains 20: %t\n", l.Contains(20))
	if v, ok := l.Pop(); ok {
		fmt.Fprintf(w, "Popped value: %d\n", v)
	}
	step()
}

// loadConfig load a script from a file. If filePath is empty, it will
// automatically search and load a file which name start with "script".
func loadConfig(filePath string) (*Config, string, error) {
	v := viper.New()

	if len(filePath) > 0 {
		v.SetConfigFile(filePath)
	} else {
		v.SetConfigName("script")
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, "", fmt.Errorf("failed to read config: %w", err)
	}

	decoderOpt := func(cfg *mapstructure.DecoderConfig) {
		cfg.ErrorUnused = true
		cfg.TagName = "yaml"
		cfg.WeaklyTypedInput = true
	}

	cfg := new(Config)
	if err := v.Unmarshal(cfg, decoderOpt); err != nil {
		return nil, "", fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return cfg, v.ConfigFileUsed(), nil
}

func mergeInclude(cfg *Config, depth int, paths []string) error {
	depth++
	if depth > 8 {
		return fmt.Errorf("maximum include depth reached, include path is %s", strings.Join(paths, " -> "))
	}

	var included []script.Op
	for _, subCfgFile := range cfg.Include {
		subPaths := append(paths, subCfgFile)
		mlog.L().Info("reading included script", zap.String("file", subCfgFile))
		subCfg, _, err := loadConfig(subCfgFile)
		if err != nil {
			return fmt.Errorf("failed to load sub config, %w", err)
		}
		if err := mergeInclude(subCfg, depth, subPaths); err != nil {
			return err
		}
		included = append(included, subCfg.Ops...)
	}

	cfg.Ops = append(included, cfg.Ops...)
	return nil
}

