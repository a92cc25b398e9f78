// SPDX-License-Identifier: MIT

package main

import (
	"fmt"

	"github.com/katalvlaran/lvmat/gda"
	"github.com/katalvlaran/lvmat/stats"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg/draw"
)

func (a *app) covCmd() *cobra.Command {
	var population, precision bool
	cmd := &cobra.Command{
		Use:   "cov FILE",
		Short: "Column covariance matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			X, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			opt := stats.WithSample()
			if population {
				opt = stats.WithPopulation()
			}
			cov, means, err := stats.Covariance(X, opt)
			if err != nil {
				return err
			}
			a.log.Info("covariance", "rows", X.Rows(), "cols", X.Cols(), "population", population)
			if err = printVector(a.stdout, "means", means); err != nil {
				return err
			}

			if err = printMatrix(a.stdout, "covariance", cov); err != nil {
				return err
			}
			if !precision {
				return nil
			}
			prec, err := stats.Precision(X, opt)
			if err != nil {
				return err
			}

			return printMatrix(a.stdout, "precision", prec)
		},
	}
	cmd.Flags().BoolVar(&population, "population", false, "divide by n instead of n-1")
	cmd.Flags().BoolVar(&precision, "precision", false, "also print the inverse covariance")

	return cmd
}

func (a *app) corrCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "corr FILE",
		Short: "Pearson correlation matrix",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			X, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			corr, _, stds, err := stats.Correlation(X)
			if err != nil {
				return err
			}
			if err = printVector(a.stdout, "stddev", stds); err != nil {
				return err
			}

			return printMatrix(a.stdout, "correlation", corr)
		},
	}
}

func (a *app) quantileCmd() *cobra.Command {
	var (
		p      float64
		method string
	)
	cmd := &cobra.Command{
		Use:   "quantile FILE",
		Short: "Per-column quantile",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("method") {
				method = a.cfg.Quantile.Method
			}
			m, err := stats.ParseQuantileMethod(method)
			if err != nil {
				return err
			}
			X, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			q, err := stats.ColumnQuantiles(X, p, stats.WithQuantileMethod(m))
			if err != nil {
				return err
			}

			return printVector(a.stdout, fmt.Sprintf("q(%g, %s)", p, m), q)
		},
	}
	cmd.Flags().Float64VarP(&p, "p", "p", 0.5, "probability in [0, 1]")
	cmd.Flags().StringVar(&method, "method", "", "empirical or lininterp")

	return cmd
}

func (a *app) gdaOptions(k int) []gda.Option {
	opts := []gda.Option{gda.WithTolerance(a.cfg.Analysis.Tolerance)}
	if k > 0 {
		opts = append(opts, gda.WithComponents(k))
	}

	return opts
}

func (a *app) pcaCmd() *cobra.Command {
	var (
		k           int
		standardize bool
		plotPath    string
	)
	cmd := &cobra.Command{
		Use:   "pca FILE",
		Short: "Principal component analysis",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			X, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			opts := a.gdaOptions(k)
			if standardize {
				opts = append(opts, gda.WithStandardize())
			}
			res, err := gda.PCA(X, opts...)
			if err != nil {
				return err
			}
			a.log.Info("pca", "components", res.Components(), "standardized", standardize)
			if err = printVector(a.stdout, "eigenvalues", res.Eigenvalues); err != nil {
				return err
			}
			if err = printVector(a.stdout, "explained", res.ExplainedVariance); err != nil {
				return err
			}
			if err = printMatrix(a.stdout, "loadings", res.Loadings); err != nil {
				return err
			}
			if err = printMatrix(a.stdout, "scores", res.Scores); err != nil {
				return err
			}
			if plotPath == "" {
				return nil
			}
			p, err := factorMap("PCA scores", series{name: "rows", coords: res.Scores, prefix: "r"})
			if err != nil {
				return err
			}

			return a.savePlot(p, plotPath)
		},
	}
	cmd.Flags().IntVarP(&k, "components", "k", 0, "number of components (0 keeps all)")
	cmd.Flags().BoolVar(&standardize, "standardize", false, "scale columns to unit variance")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a score plot (.png, .svg, .pdf)")

	return cmd
}

func (a *app) caCmd() *cobra.Command {
	var (
		k        int
		plotPath string
	)
	cmd := &cobra.Command{
		Use:   "ca FILE",
		Short: "Correspondence analysis of a contingency table",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			N, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			res, err := gda.CorrespondenceAnalysis(N, a.gdaOptions(k)...)
			if err != nil {
				return err
			}
			a.log.Info("ca", "axes", len(res.Inertia), "total_inertia", res.TotalInertia)
			if _, err = fmt.Fprintf(a.stdout, "total inertia = %.6g\n", res.TotalInertia); err != nil {
				return err
			}
			if err = printVector(a.stdout, "inertia", res.Inertia); err != nil {
				return err
			}
			if err = printMatrix(a.stdout, "row coordinates", res.RowCoords); err != nil {
				return err
			}
			if err = printMatrix(a.stdout, "column coordinates", res.ColCoords); err != nil {
				return err
			}
			if plotPath == "" {
				return nil
			}
			p, err := factorMap("CA factor map",
				series{name: "rows", coords: res.RowCoords, prefix: "r", shape: draw.CircleGlyph{}},
				series{name: "columns", coords: res.ColCoords, prefix: "c", shape: draw.TriangleGlyph{}},
			)
			if err != nil {
				return err
			}

			return a.savePlot(p, plotPath)
		},
	}
	cmd.Flags().IntVarP(&k, "components", "k", 0, "number of axes (0 keeps all)")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write a factor map (.png, .svg, .pdf)")

	return cmd
}

func (a *app) mdsCmd() *cobra.Command {
	var (
		k         int
		distances bool
		plotPath  string
	)
	cmd := &cobra.Command{
		Use:   "mds FILE",
		Short: "Classical multidimensional scaling",
		Long: `Embeds points in k dimensions. FILE holds observations in rows,
or a symmetric distance matrix when --distances is set.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			in, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			D := in
			if !distances {
				if D, err = gda.EuclideanDistances(in); err != nil {
					return err
				}
			}
			res, err := gda.ClassicalMDS(D, a.gdaOptions(k)...)
			if err != nil {
				return err
			}
			a.log.Info("mds", "points", D.Rows(), "dims", res.Coords.Cols())
			if err = printVector(a.stdout, "eigenvalues", res.Eigenvalues); err != nil {
				return err
			}
			if err = printMatrix(a.stdout, "coordinates", res.Coords); err != nil {
				return err
			}
			if plotPath == "" {
				return nil
			}
			p, err := factorMap("MDS embedding", series{name: "points", coords: res.Coords, prefix: "p"})
			if err != nil {
				return err
			}

			return a.savePlot(p, plotPath)
		},
	}
	cmd.Flags().IntVarP(&k, "components", "k", 0, "embedding dimensions (0 means 2)")
	cmd.Flags().BoolVar(&distances, "distances", false, "FILE is already a distance matrix")
	cmd.Flags().StringVar(&plotPath, "plot", "", "write the embedding (.png, .svg, .pdf)")

	return cmd
}

func (a *app) convertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert IN OUT",
		Short: "Convert between CSV and the binary " + binaryExt + " format",
		Args:  cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			m, err := a.readInput(args[0])
			if err != nil {
				return err
			}
			if err = a.writeOutput(args[1], m); err != nil {
				return err
			}
			a.log.Info("converted", "from", args[0], "to", args[1], "rows", m.Rows(), "cols", m.Cols())

			return nil
		},
	}
}
