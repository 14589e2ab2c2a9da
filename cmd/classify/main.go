// Command classify evaluates a kNN image classifier over a testing set,
// partitioned across parallel workers, and prints the total number of
// correct predictions.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	classify "github.com/alexpejovic/MachineLearningOptimization"
	"github.com/alexpejovic/MachineLearningOptimization/distance"
)

var (
	flagK       int
	flagMetric  string
	flagWorkers int
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "classify [-v] [-K <num>] [-d <distance metric>] [-p <num_workers>] <training_file> <testing_file>",
	Short: "Parallel kNN image classifier",
	Long: `Classify a testing set against a training set with k-nearest-neighbor
majority vote, partitioned across parallel workers.

Dataset arguments are local paths by default; s3://bucket/key and
minio://endpoint/bucket/key URIs are also accepted.

The only output on stdout is one integer: the total number of test images
classified correctly. Diagnostics go to stderr.`,
	Args:          cobra.ExactArgs(2),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          run,
}

func init() {
	rootCmd.Flags().IntVarP(&flagK, "neighbors", "K", 1, "K value for kNN")
	rootCmd.Flags().StringVarP(&flagMetric, "distance", "d", "euclidean", "distance metric (euclidean or cosine, prefixes allowed)")
	rootCmd.Flags().IntVarP(&flagWorkers, "procs", "p", 1, "number of parallel workers")
	rootCmd.Flags().BoolVarP(&flagVerbose, "verbose", "v", false, "print debugging information on stderr")
}

func run(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	metric, err := distance.Resolve(flagMetric)
	if err != nil {
		return err
	}

	logger := classify.NoopLogger()
	if flagVerbose {
		logger = classify.NewTextLogger(slog.LevelDebug)
	}

	c, err := classify.New(
		classify.WithK(flagK),
		classify.WithMetric(metric),
		classify.WithWorkers(flagWorkers),
		classify.WithLogger(logger),
	)
	if err != nil {
		return err
	}

	logger.Debug("loading datasets", "training", args[0], "testing", args[1])

	training, err := loadDataset(ctx, args[0])
	if err != nil {
		return err
	}
	testing, err := loadDataset(ctx, args[1])
	if err != nil {
		return err
	}

	total, err := c.Evaluate(ctx, training, testing)
	if err != nil {
		return err
	}

	// The single integer on stdout is the whole primary output.
	fmt.Fprintln(cmd.OutOrStdout(), total)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "classify:", err)
		os.Exit(1)
	}
}
