package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"reel/internal/catalog"
)

func newRandomCommand(ctx *commandContext) *cobra.Command {
	var (
		typeFlag    string
		genreFlag   string
		yearFlag    string
		companyFlag string
		personFlag  string
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Pick a random title matching the filters",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mediaType, err := parseMediaType(typeFlag)
			if err != nil {
				return err
			}
			svc, err := ctx.ensureService()
			if err != nil {
				return err
			}

			companyID, err := resolveCompany(cmd, ctx, companyFlag)
			if err != nil {
				return err
			}
			personID, err := resolvePerson(cmd, ctx, personFlag)
			if err != nil {
				return err
			}

			item, err := svc.GetRandom(cmd.Context(), catalog.RandomFilters{
				Type:      mediaType,
				Genre:     genreFlag,
				Year:      yearFlag,
				CompanyID: companyID,
				PersonID:  personID,
			})
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s (%s)  [%s]\n", item.Title, item.Year, item.ID)
			if item.VoteCount > 0 {
				fmt.Fprintf(out, "Rating: %s\n", formatRating(item.VoteAverage, item.VoteCount))
			}
			fmt.Fprintf(out, "Run `reel show %s` for details.\n", item.ID)
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeFlag, "type", "t", "movie", "Media type: movie or tv")
	cmd.Flags().StringVarP(&genreFlag, "genre", "g", "", "Genre id filter")
	cmd.Flags().StringVarP(&yearFlag, "year", "y", "", "Release year filter")
	cmd.Flags().StringVar(&companyFlag, "company", "", "Production company name or numeric id")
	cmd.Flags().StringVar(&personFlag, "person", "", "Person name or numeric id")
	return cmd
}

// resolveCompany accepts a numeric id as-is and resolves names through the
// company search, taking the first match.
func resolveCompany(cmd *cobra.Command, ctx *commandContext, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return value, nil
	}
	svc, err := ctx.ensureService()
	if err != nil {
		return "", err
	}
	companies, err := svc.SearchCompanies(cmd.Context(), value)
	if err != nil || len(companies) == 0 {
		return "", fmt.Errorf("no production company matches %q", value)
	}
	return strconv.FormatInt(companies[0].ID, 10), nil
}

func resolvePerson(cmd *cobra.Command, ctx *commandContext, value string) (string, error) {
	if value == "" {
		return "", nil
	}
	if _, err := strconv.ParseInt(value, 10, 64); err == nil {
		return value, nil
	}
	svc, err := ctx.ensureService()
	if err != nil {
		return "", err
	}
	people, err := svc.SearchPeople(cmd.Context(), value)
	if err != nil || len(people) == 0 {
		return "", fmt.Errorf("no person matches %q", value)
	}
	return strconv.FormatInt(people[0].ID, 10), nil
}
