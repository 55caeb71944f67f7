package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"cvmatch/internal/app"
	"cvmatch/internal/field"
	"cvmatch/internal/render"
	"cvmatch/pkg/models"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Score a CV against a job description",
	Long:  "Submit a CV and a job description, as text or files, and render the match scores",
	Example: `  cvmatch analyze --cv-text "Experienced software engineer..." --jd-text "We are hiring..."
  cvmatch analyze --cv-file resume.pdf --jd-file posting.docx
  cvmatch analyze --cv-file resume.pdf --jd-text "We are hiring a backend engineer..."
  cvmatch analyze --cv-text "..." --jd-text "..." --plain`,
	Run: func(cmd *cobra.Command, args []string) {
		application := app.GetAppFromContext(cmd.Context())

		cvText, _ := cmd.Flags().GetString("cv-text")
		cvFile, _ := cmd.Flags().GetString("cv-file")
		jdText, _ := cmd.Flags().GetString("jd-text")
		jdFile, _ := cmd.Flags().GetString("jd-file")
		plain, _ := cmd.Flags().GetBool("plain")

		var result *models.MatchResult
		var err error

		if plain {
			if cvFile != "" || jdFile != "" {
				fmt.Fprintln(os.Stderr, "--plain only accepts text inputs")
				os.Exit(1)
			}
			result, err = application.API.PredictText(cmd.Context(), cvText, jdText)
		} else {
			cv, ferr := buildField("CV", cvText, cvFile)
			if ferr != nil {
				fmt.Fprintln(os.Stderr, ferr)
				os.Exit(1)
			}
			jd, ferr := buildField("JD", jdText, jdFile)
			if ferr != nil {
				fmt.Fprintln(os.Stderr, ferr)
				os.Exit(1)
			}
			result, err = application.API.SubmitMatch(cmd.Context(), cv, jd)
		}

		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		fmt.Println(titleStyle.Render("Match Analysis Results"))
		fmt.Println(render.Build(*result).Detailed())
	},
}

// buildField assembles one field state from the command flags. A file flag
// puts the field in file mode; the file goes through the same validation the
// interactive analyzer applies.
func buildField(label, text, file string) (*field.State, error) {
	s := field.NewState(label)
	s.SetText(text)
	if file == "" {
		return s, nil
	}

	ref, err := field.NewFileRef(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", label, err)
	}
	s.SetMode(field.ModeFile)
	if res := s.SelectFile(ref); !res.Valid {
		return nil, fmt.Errorf("%s", s.Err)
	}
	return s, nil
}

func init() {
	rootCmd.AddCommand(analyzeCmd)

	analyzeCmd.Flags().String("cv-text", "", "CV content as text")
	analyzeCmd.Flags().String("cv-file", "", "Path to a CV file (pdf, docx, doc, txt, pptx)")
	analyzeCmd.Flags().String("jd-text", "", "Job description as text")
	analyzeCmd.Flags().String("jd-file", "", "Path to a job description file")
	analyzeCmd.Flags().Bool("plain", false, "Use the text-only predict endpoint")
}
