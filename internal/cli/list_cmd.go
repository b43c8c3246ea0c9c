package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/alexanderramin/hknav/internal/cli/formatter"
	"github.com/alexanderramin/hknav/internal/domain"
	"github.com/alexanderramin/hknav/internal/filter"
)

// sortValue is a pflag.Value accepting rank or deadline.
type sortValue filter.SortKey

func (v *sortValue) String() string {
	if *v == "" {
		return string(filter.SortRank)
	}
	return string(*v)
}

func (v *sortValue) Set(s string) error {
	k, err := filter.ParseSortKey(s)
	if err != nil {
		return err
	}
	*v = sortValue(k)
	return nil
}

func (v *sortValue) Type() string { return "rank|deadline" }

// filterFlags are the filter criteria shared by list, districts and export.
type filterFlags struct {
	curriculum string
	schoolType string
	district   string
	language   string
	search     string
	sort       sortValue
}

func (f *filterFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.curriculum, "curriculum", "", "Curriculum tab: DSE, IB, AP or British")
	fs.StringVar(&f.schoolType, "type", "", "School type: international, dss, private or aided")
	fs.StringVar(&f.district, "district", "", "District (prefix or part of the name)")
	fs.StringVar(&f.language, "language", "", "Teaching language")
	fs.StringVarP(&f.search, "search", "s", "", "Search names, location and district")
	fs.Var(&f.sort, "sort", "Sort order: rank or deadline")
}

// spec validates the flags against the catalog and builds a filter.Spec.
func (f *filterFlags) spec(app *App) (filter.Spec, error) {
	spec := filter.Spec{Search: f.search, Sort: filter.SortKey(f.sort)}
	if spec.Sort == "" {
		spec.Sort = filter.SortRank
	}

	if f.curriculum != "" {
		c, err := domain.ParseCurriculum(f.curriculum)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.Curriculum = c
	}
	if f.schoolType != "" {
		t, err := domain.ParseSchoolType(f.schoolType)
		if err != nil {
			return filter.Spec{}, err
		}
		spec.Type = t
	}

	schools := app.Nav.Catalog().All()
	district, err := resolveOption("district", f.district, filter.Districts(schools))
	if err != nil {
		return filter.Spec{}, err
	}
	spec.District = district

	language, err := resolveOption("language", f.language, filter.Languages(schools))
	if err != nil {
		return filter.Spec{}, err
	}
	spec.Language = language

	return spec, nil
}

// apply installs the flags as the session filter.
func (f *filterFlags) apply(app *App) error {
	spec, err := f.spec(app)
	if err != nil {
		return err
	}
	app.Nav.SetFilter(spec)
	return nil
}

func newListCmd(app *App) *cobra.Command {
	var flags filterFlags
	var followed bool

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List schools matching the filters",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(app); err != nil {
				return err
			}

			schools := app.Nav.Visible()
			if followed {
				st := app.Nav.State()
				kept := schools[:0]
				for _, s := range schools {
					if st.IsFollowed(s.ID) {
						kept = append(kept, s)
					}
				}
				schools = kept
			}

			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatSchoolList(schools, app.Nav.State(), app.Nav.Now()))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().BoolVar(&followed, "followed", false, "Only show followed schools")

	return cmd
}

func newDistrictsCmd(app *App) *cobra.Command {
	var flags filterFlags
	var limit int

	cmd := &cobra.Command{
		Use:   "districts",
		Short: "Group the matching schools by district",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := flags.apply(app); err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), formatter.FormatDistricts(app.Nav.Districts(limit)))
			return nil
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVar(&limit, "limit", filter.DistrictPreviewLimit, "Schools shown per district (0 for all)")

	return cmd
}
