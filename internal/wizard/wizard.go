// Package wizard collects a packaging attribute profile through an
// interactive form, used when inference alone is not enough.
package wizard

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
	"golang.org/x/term"

	"github.com/psinghania/packadvisor/internal/profile"
)

// Answers holds the raw form values before they are applied to a profile.
type Answers struct {
	ProductState        string
	PHLevel             string
	OxygenSensitivity   string
	MoistureSensitivity string
	LightSensitivity    string
	StorageTemperature  string
	Budget              string
	Sustainability      string
	ShelfLife           string
	Positioning         string
}

// AnswersFrom seeds form values from an existing profile so the wizard opens
// with the inferred attributes preselected.
func AnswersFrom(p profile.Profile) Answers {
	return Answers{
		ProductState:        string(p.ProductState),
		PHLevel:             string(p.PHLevel),
		OxygenSensitivity:   string(p.OxygenSensitivity),
		MoistureSensitivity: string(p.MoistureSensitivity),
		LightSensitivity:    string(p.LightSensitivity),
		StorageTemperature:  string(p.StorageTemperature),
		Budget:              string(p.BudgetRange),
		Sustainability:      string(p.Sustainability),
		ShelfLife:           string(p.ShelfLife),
		Positioning:         string(p.BrandPositioning),
	}
}

// Apply overlays the answers onto a profile. Blank answers leave the field
// untouched.
func (a Answers) Apply(p profile.Profile) profile.Profile {
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set((*string)(&p.ProductState), a.ProductState)
	set((*string)(&p.PHLevel), a.PHLevel)
	set((*string)(&p.OxygenSensitivity), a.OxygenSensitivity)
	set((*string)(&p.MoistureSensitivity), a.MoistureSensitivity)
	set((*string)(&p.LightSensitivity), a.LightSensitivity)
	set((*string)(&p.StorageTemperature), a.StorageTemperature)
	set((*string)(&p.BudgetRange), a.Budget)
	set((*string)(&p.Sustainability), a.Sustainability)
	set((*string)(&p.ShelfLife), a.ShelfLife)
	set((*string)(&p.BrandPositioning), a.Positioning)
	return p
}

func options(values ...string) []huh.Option[string] {
	opts := make([]huh.Option[string], 0, len(values))
	for _, v := range values {
		opts = append(opts, huh.NewOption(v, v))
	}
	return opts
}

var sensitivityLevels = []string{"None", "Low", "Medium", "High"}

// RunProfileWizard runs an interactive huh form to review and adjust an
// inferred profile. The returned profile starts from initial with the chosen
// answers applied.
func RunProfileWizard(in io.Reader, out io.Writer, initial profile.Profile) (profile.Profile, error) {
	a := AnswersFrom(initial)

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Product state").
				Description("Physical state of the product being packaged").
				Options(options("Liquid", "Solid", "Powder", "Paste", "Semi-solid", "Gas")...).
				Value(&a.ProductState),
			huh.NewSelect[string]().
				Title("pH level").
				Options(options("Acidic", "Neutral", "Basic")...).
				Value(&a.PHLevel),
			huh.NewSelect[string]().
				Title("Oxygen sensitivity").
				Options(options(sensitivityLevels...)...).
				Value(&a.OxygenSensitivity),
			huh.NewSelect[string]().
				Title("Moisture sensitivity").
				Options(options(sensitivityLevels...)...).
				Value(&a.MoistureSensitivity),
			huh.NewSelect[string]().
				Title("Light sensitivity").
				Options(options(sensitivityLevels...)...).
				Value(&a.LightSensitivity),
		),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Storage temperature").
				Options(options("Frozen", "Cold", "Cool", "Ambient", "Hot")...).
				Value(&a.StorageTemperature),
			huh.NewSelect[string]().
				Title("Budget range").
				Options(options("Economy", "Standard", "Premium")...).
				Value(&a.Budget),
			huh.NewSelect[string]().
				Title("Sustainability priority").
				Options(options("Cost focused", "Balanced", "Eco-focused")...).
				Value(&a.Sustainability),
			huh.NewSelect[string]().
				Title("Shelf life requirement").
				Options(options("Days", "Weeks", "Months", "Years")...).
				Value(&a.ShelfLife),
			huh.NewSelect[string]().
				Title("Brand positioning").
				Options(options("Value", "Mainstream", "Premium", "Luxury")...).
				Value(&a.Positioning),
		),
	).
		WithInput(in).
		WithOutput(out)

	// Use accessible mode for non-TTY input (e.g., tests, piped input).
	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return profile.Profile{}, fmt.Errorf("profile wizard failed: %w", err)
	}

	return a.Apply(initial), nil
}

// PromptProductName asks for a product name when none was given on the
// command line.
func PromptProductName(in io.Reader, out io.Writer, initial string) (string, error) {
	name := initial

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Product name").
				Description("The product you need packaging for").
				Placeholder("Cold Brew Coffee").
				Value(&name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("product name is required")
					}
					return nil
				}),
		),
	).
		WithInput(in).
		WithOutput(out)

	if f, ok := in.(*os.File); !ok || !term.IsTerminal(int(f.Fd())) {
		form = form.WithAccessible(true)
	}

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("product name prompt failed: %w", err)
	}
	return strings.TrimSpace(name), nil
}
