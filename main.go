package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

var (
	// Inputs
	scanDir         string
	scanExt         string
	interactiveMode bool

	// Classification
	vocabFile      string
	bufferKeywords []string
	specialNodes   []string

	// Output
	outputFile      string
	startIndex      int
	pdfOutputFile   string
	copyToClipboard bool

	verbose bool
	cfgFile string
)

// version is the application version, set via ldflags.
var version string = "dev"

var rootCmd = &cobra.Command{
	Use:   "cellcount [FILES...]",
	Short: "cellcount counts cells and buffers in circuit description files.",
	Long: `cellcount reads .ckt circuit descriptions, counts gate cells and the buffers
among them, prints a summary table and saves it as CSV.

Without FILES the configured list is used (c499.ckt, c1355.ckt, c2670.ckt by default).
Missing or unreadable files are reported and skipped.`,
	Version:       version,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger(cmd.OutOrStdout(), viper.GetBool("verbose"))
		defer func() { _ = log.Sync() }()

		if viper.GetBool("interactive") {
			selected, err := runInteractiveFinder(viper.GetString("ext"), log)
			if err != nil {
				return err
			}
			if selected == nil {
				return nil
			}
			args = selected
		}

		cfg, err := buildConfig(viper.GetViper(), args, log)
		if err != nil {
			return err
		}

		_, err = run(cfg, cmd.OutOrStdout(), log)
		return err
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/cellcount/config.toml)")

	// Inputs
	rootCmd.Flags().StringVar(&scanDir, "scan", "", "Also count every circuit file found under this directory")
	viper.BindPFlag("scan", rootCmd.Flags().Lookup("scan"))
	rootCmd.Flags().StringVar(&scanExt, "ext", defaultExtension, "Extension of circuit files for --scan and --interactive")
	viper.BindPFlag("ext", rootCmd.Flags().Lookup("ext"))
	rootCmd.Flags().BoolVar(&interactiveMode, "interactive", false, "Pick circuit files with a fuzzy finder")
	viper.BindPFlag("interactive", rootCmd.Flags().Lookup("interactive"))

	// Classification
	rootCmd.Flags().StringVar(&vocabFile, "vocab", "", "Path to a gates.yml vocabulary file")
	viper.BindPFlag("vocab", rootCmd.Flags().Lookup("vocab"))
	rootCmd.Flags().StringSliceVar(&bufferKeywords, "buffer-keywords", nil, "Substrings marking a gate as a buffer (comma-separated, default BUF,BUFFER)")
	viper.BindPFlag("buffer_keywords", rootCmd.Flags().Lookup("buffer-keywords"))
	rootCmd.Flags().StringSliceVar(&specialNodes, "special-nodes", nil, "Gate types excluded from all counts (comma-separated, default INPUT,OUTPUT)")
	viper.BindPFlag("special_nodes", rootCmd.Flags().Lookup("special-nodes"))

	// Output
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", defaultOutputPath, "CSV file to write (overwritten)")
	viper.BindPFlag("output", rootCmd.Flags().Lookup("output"))
	rootCmd.Flags().IntVar(&startIndex, "start-index", defaultStartIndex, "Index assigned to the first configured file")
	viper.BindPFlag("start_index", rootCmd.Flags().Lookup("start-index"))
	rootCmd.Flags().StringVar(&pdfOutputFile, "pdf", "", "Also save the table as PDF")
	viper.BindPFlag("pdf", rootCmd.Flags().Lookup("pdf"))
	rootCmd.Flags().BoolVarP(&copyToClipboard, "clipboard", "c", false, "Copy the rendered table to the clipboard")
	viper.BindPFlag("clipboard", rootCmd.Flags().Lookup("clipboard"))
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Log per-file counts")
	viper.BindPFlag("verbose", rootCmd.Flags().Lookup("verbose"))

	setDefaults(viper.GetViper())
}

// setDefaults registers defaults for keys that have no flag of their own.
// buffer_keywords and special_nodes are left unset so IsSet reports overrides only.
func setDefaults(v *viper.Viper) {
	v.SetDefault("files", defaultFiles)
	v.SetDefault("output", defaultOutputPath)
	v.SetDefault("start_index", defaultStartIndex)
	v.SetDefault("ext", defaultExtension)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		viper.AddConfigPath(filepath.Join(home, ".config", "cellcount"))
		viper.AddConfigPath(".")
		viper.SetConfigName("config")
		viper.SetConfigType("toml")
	}

	viper.SetEnvPrefix("CELLCOUNT")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv() // read in environment variables that match CELLCOUNT_*

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	} else {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintf(os.Stderr, "Error reading config file: %s\n", err)
		}
	}
}

// buildConfig turns the merged flag, env, and config-file settings into the
// immutable Config consumed by run.
func buildConfig(v *viper.Viper, args []string, log *zap.SugaredLogger) (Config, error) {
	cfg := Config{
		StartIndex: v.GetInt("start_index"),
		OutputPath: v.GetString("output"),
		PDFPath:    v.GetString("pdf"),
		Clipboard:  v.GetBool("clipboard"),
		Vocabulary: resolveVocabulary(v, log),
	}
	if cfg.StartIndex < 1 {
		return Config{}, fmt.Errorf("start index must be at least 1, got %d", cfg.StartIndex)
	}
	if cfg.OutputPath == "" {
		cfg.OutputPath = defaultOutputPath
	}

	scan := v.GetString("scan")
	switch {
	case len(args) > 0:
		cfg.Files = append(cfg.Files, args...)
	case scan == "":
		cfg.Files = append(cfg.Files, v.GetStringSlice("files")...)
	}

	if scan != "" {
		found, err := scanDirectory(scan, v.GetString("ext"), log)
		if err != nil {
			log.Warnf("Scan of '%s' failed: %v", scan, err)
		}
		cfg.Files = append(cfg.Files, found...)
	}
	return cfg, nil
}

// resolveVocabulary loads gates.yml if there is one, then applies explicit
// keyword overrides. Any problem falls back to the built-in lists.
func resolveVocabulary(v *viper.Viper, log *zap.SugaredLogger) Vocabulary {
	vocab := defaultVocabulary()

	path := v.GetString("vocab")
	explicit := path != ""
	if !explicit {
		if found, err := findVocabularyFile(); err == nil {
			path = found
		}
	}
	if path != "" {
		loaded, err := loadVocabulary(path)
		if err != nil {
			log.Warnf("Could not load gate vocabulary: %v. Using defaults.", err)
		} else {
			vocab = loaded
			log.Debugf("Loaded gate vocabulary from %s", path)
		}
	}

	if v.IsSet("buffer_keywords") {
		vocab.BufferKeywords = normalizeKeywords(v.GetStringSlice("buffer_keywords"))
	}
	if v.IsSet("special_nodes") {
		vocab.SpecialNodes = normalizeKeywords(v.GetStringSlice("special_nodes"))
	}
	return vocab
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
