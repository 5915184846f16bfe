// Package main implements the lzvar command line tool: streaming LZW
// compression and expansion over stdin/stdout with a pluggable eviction
// policy.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/seiflotfy/lzvar"
)

var (
	flagMode     string
	flagMinW     int
	flagMaxW     int
	flagPolicy   string
	flagAlphabet string
	flagVerbose  bool
)

var rootCmd = &cobra.Command{
	Use:   "lzvar",
	Short: "Adaptive LZW codec with bounded codebook and pluggable eviction",
	Long: `lzvar compresses raw bytes from stdin to a codeword stream on stdout,
or expands such a stream back to the original bytes.

Examples:
  # Compress with an LRU codebook
  lzvar --mode compress --alphabet ascii.txt --minW 9 --maxW 14 --policy lru < in.txt > out.lz

  # Expand (all parameters replay from the stream header)
  lzvar --mode expand < out.lz > in.txt`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().StringVar(&flagMode, "mode", "", "compress or expand (required)")
	rootCmd.Flags().IntVar(&flagMinW, "minW", lzvar.DefaultMinWidth, "minimum codeword width in bits")
	rootCmd.Flags().IntVar(&flagMaxW, "maxW", lzvar.DefaultMaxWidth, "maximum codeword width in bits")
	rootCmd.Flags().StringVar(&flagPolicy, "policy", "freeze", "eviction policy: freeze, reset, lru or lfu")
	rootCmd.Flags().StringVar(&flagAlphabet, "alphabet", "", "path to the alphabet file (required for compression)")
	rootCmd.Flags().BoolVar(&flagVerbose, "verbose", false, "enable debug tracing on stderr")
}

func run(cmd *cobra.Command, args []string) error {
	log := newLogger(flagVerbose)
	defer log.Sync()

	switch flagMode {
	case "compress":
		return runCompress(log)
	case "expand":
		return lzvar.Expand(os.Stdout, os.Stdin, lzvar.WithLogger(log))
	case "":
		return fmt.Errorf("--mode is required")
	default:
		return fmt.Errorf("--mode must be 'compress' or 'expand', got %q", flagMode)
	}
}

func runCompress(log *zap.Logger) error {
	if flagAlphabet == "" {
		return fmt.Errorf("--alphabet is required for compression")
	}
	if flagMinW < 1 || flagMaxW < 1 || flagMinW > 255 || flagMaxW > 255 {
		return fmt.Errorf("width bounds out of range: minW=%d maxW=%d", flagMinW, flagMaxW)
	}
	policy, err := lzvar.ParsePolicy(flagPolicy)
	if err != nil {
		return err
	}
	alphabet, err := lzvar.LoadAlphabet(flagAlphabet)
	if err != nil {
		return err
	}
	enc, err := lzvar.NewEncoder(alphabet,
		lzvar.WithWidthRange(uint8(flagMinW), uint8(flagMaxW)),
		lzvar.WithPolicy(policy),
		lzvar.WithLogger(log),
	)
	if err != nil {
		return err
	}
	return enc.Compress(os.Stdout, os.Stdin)
}

// newLogger builds a console logger on stderr; stdout carries the stream.
func newLogger(verbose bool) *zap.Logger {
	level := zapcore.ErrorLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewProductionEncoderConfig()
	encoderCfg.TimeKey = "ts"
	encoderCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.Lock(os.Stderr),
		level,
	)
	return zap.New(core)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "lzvar:", err)
		os.Exit(1)
	}
}
