package cmd

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"movieShelf/catalog"
	"movieShelf/movie"
	"movieShelf/tui"
	"movieShelf/utils"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var showJSON bool

var showCmd = &cobra.Command{
	Use:   "show [file.csv]",
	Short: "Print the movies in a CSV catalog",
	Long:  "Imports a CSV catalog and prints its movies sorted by title, without starting the interactive session.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path, err := utils.ResolvePath(args[0], cfg.DefaultDirectory)
		if err != nil {
			return err
		}

		result, err := catalog.Import(path)
		if err != nil {
			return err
		}
		c := catalog.New()
		c.AddAll(result.Movies)

		var movies []*movie.Movie
		for m := range c.Sorted() {
			movies = append(movies, m)
		}
		logrus.WithFields(logrus.Fields{"path": path, "movies": len(movies), "skipped": result.Skipped}).Debug("show")

		if showJSON {
			out := struct {
				File    string         `json:"file"`
				Movies  []*movie.Movie `json:"movies"`
				Skipped int            `json:"skipped"`
			}{File: path, Movies: movies, Skipped: result.Skipped}
			if out.Movies == nil {
				out.Movies = []*movie.Movie{}
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 4, 2, ' ', 0)
		fmt.Fprintln(tw, "Title\tGenre\tYear\tRuntime\tScore\tDirector")
		for _, m := range movies {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d min\t%s\t%s\n", m.Title, m.Genre, m.Year, m.Runtime, movie.FormatScore(m.Score), m.Director)
		}
		if err := tw.Flush(); err != nil {
			return err
		}
		if result.Skipped > 0 {
			text := fmt.Sprintf("Skipped %d invalid rows.", result.Skipped)
			fmt.Fprintln(cmd.ErrOrStderr(), tui.WarningText(text, tui.NewTheme(cmd.ErrOrStderr())))
		}
		return nil
	},
}

func init() {
	showCmd.Flags().BoolVar(&showJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(showCmd)
}
