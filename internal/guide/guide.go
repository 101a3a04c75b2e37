// ABOUTME: Static diet guidance table and the (category, gender) selector.
// ABOUTME: Content is embedded YAML, parsed and checked once on first use.
package guide

import (
	_ "embed"
	"fmt"
	"sync"

	"github.com/harperreed/bmi/internal/models"
	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Target is one row of a nutrition strategy: a goal and why.
type Target struct {
	Target string `json:"target" yaml:"target"`
	Desc   string `json:"desc" yaml:"desc"`
}

// Strategy is the macro-level plan for a record.
type Strategy struct {
	Calories Target `json:"calories" yaml:"calories"`
	Carbs    Target `json:"carbs" yaml:"carbs"`
	Protein  Target `json:"protein" yaml:"protein"`
	Fat      Target `json:"fat" yaml:"fat"`
}

// Tip is a single piece of guidance with an icon.
type Tip struct {
	Icon  string `json:"icon" yaml:"icon"`
	Title string `json:"title" yaml:"title"`
	Desc  string `json:"desc" yaml:"desc"`
}

// MythBuster is an optional callout correcting a common misconception.
type MythBuster struct {
	Title   string `json:"title" yaml:"title"`
	Content string `json:"content" yaml:"content"`
}

// Food is a recommended food item.
type Food struct {
	Icon string `json:"icon" yaml:"icon"`
	Name string `json:"name" yaml:"name"`
}

// Nutrition holds the daily intake targets.
type Nutrition struct {
	Calories int `json:"calories" yaml:"calories"`
	ProteinG int `json:"protein_g" yaml:"protein_g"`
	CarbsG   int `json:"carbs_g" yaml:"carbs_g"`
	FatG     int `json:"fat_g" yaml:"fat_g"`
}

// Record is the content bundle for one (category, gender) pair.
type Record struct {
	Category     models.Category `json:"category" yaml:"category"`
	Gender       models.Gender   `json:"gender" yaml:"gender"`
	Title        string          `json:"title" yaml:"title"`
	Subtitle     string          `json:"subtitle" yaml:"subtitle"`
	Note         string          `json:"note" yaml:"note"`
	Strategy     Strategy        `json:"strategy" yaml:"strategy"`
	Tips         []Tip           `json:"tips" yaml:"tips"`
	MythBuster   *MythBuster     `json:"myth_buster,omitempty" yaml:"myth_buster,omitempty"`
	Foods        []Food          `json:"foods" yaml:"foods"`
	Nutrition    Nutrition       `json:"nutrition" yaml:"nutrition"`
	DietMethods  []string        `json:"diet_methods" yaml:"diet_methods"`
	EatingOutTip string          `json:"eating_out_tip" yaml:"eating_out_tip"`
}

// DietMethod describes one of the recommended eating patterns.
type DietMethod struct {
	Key      string   `json:"key" yaml:"key"`
	Icon     string   `json:"icon" yaml:"icon"`
	Name     string   `json:"name" yaml:"name"`
	Goal     string   `json:"goal" yaml:"goal"`
	Suitable string   `json:"suitable" yaml:"suitable"`
	Focus    string   `json:"focus" yaml:"focus"`
	Tips     []string `json:"tips" yaml:"tips"`
}

// Scene is one eating-out setting with its golden rule.
type Scene struct {
	Key       string `json:"key" yaml:"key"`
	Icon      string `json:"icon" yaml:"icon"`
	Name      string `json:"name" yaml:"name"`
	Rule      string `json:"rule" yaml:"rule"`
	Recommend string `json:"recommend" yaml:"recommend"`
	Avoid     string `json:"avoid" yaml:"avoid"`
}

// EatingOut is the dining-out guide shared by every record.
type EatingOut struct {
	Motto  string  `json:"motto" yaml:"motto"`
	Scenes []Scene `json:"scenes" yaml:"scenes"`
}

// Habit is a numbered micro-habit.
type Habit struct {
	ID    int    `json:"id" yaml:"id"`
	Title string `json:"title" yaml:"title"`
	Desc  string `json:"desc" yaml:"desc"`
}

// HabitGroup is a themed set of micro-habits.
type HabitGroup struct {
	Name   string  `json:"name" yaml:"name"`
	Habits []Habit `json:"habits" yaml:"habits"`
}

type content struct {
	DietMethods []DietMethod `yaml:"diet_methods"`
	EatingOut   EatingOut    `yaml:"eating_out"`
	HabitGroups []HabitGroup `yaml:"habit_groups"`
	Records     []Record     `yaml:"records"`
}

type key struct {
	category models.Category
	gender   models.Gender
}

type table struct {
	content
	byKey   map[key]*Record
	methods map[string]*DietMethod
}

var (
	loaded  *table
	loadErr error
	once    sync.Once
)

func get() *table {
	once.Do(func() {
		loaded, loadErr = parse(contentYAML)
	})
	if loadErr != nil {
		panic(fmt.Sprintf("guide: embedded content is invalid: %v", loadErr))
	}
	return loaded
}

// parse decodes the content document and checks that every
// (category, gender) pair has exactly one record.
func parse(data []byte) (*table, error) {
	var c content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("decode content: %w", err)
	}

	t := &table{
		content: c,
		byKey:   make(map[key]*Record, len(c.Records)),
		methods: make(map[string]*DietMethod, len(c.DietMethods)),
	}
	for i := range t.DietMethods {
		m := &t.DietMethods[i]
		if _, dup := t.methods[m.Key]; dup {
			return nil, fmt.Errorf("duplicate diet method %q", m.Key)
		}
		t.methods[m.Key] = m
	}
	for i := range t.Records {
		r := &t.Records[i]
		if !r.Category.IsValid() || !r.Gender.IsValid() {
			return nil, fmt.Errorf("record %d: bad key (%s, %s)", i, r.Category, r.Gender)
		}
		k := key{r.Category, r.Gender}
		if _, dup := t.byKey[k]; dup {
			return nil, fmt.Errorf("duplicate record for (%s, %s)", r.Category, r.Gender)
		}
		for _, dm := range r.DietMethods {
			if _, ok := t.methods[dm]; !ok {
				return nil, fmt.Errorf("record (%s, %s): unknown diet method %q", r.Category, r.Gender, dm)
			}
		}
		t.byKey[k] = r
	}
	for _, cat := range models.AllCategories {
		for _, g := range models.AllGenders {
			if _, ok := t.byKey[key{cat, g}]; !ok {
				return nil, fmt.Errorf("missing record for (%s, %s)", cat, g)
			}
		}
	}
	return t, nil
}

// Select returns the content record for a category and gender.
func Select(category models.Category, gender models.Gender) (Record, error) {
	if !category.IsValid() {
		return Record{}, fmt.Errorf("%w: unknown category %q", models.ErrInvalidInput, category)
	}
	if gender == "" {
		return Record{}, models.ErrMissingGender
	}
	if !gender.IsValid() {
		return Record{}, fmt.Errorf("%w: unknown gender %q", models.ErrInvalidInput, gender)
	}
	return get().byKey[key{category, gender}].clone(), nil
}

// Records returns every record in category then gender order.
func Records() []Record {
	t := get()
	out := make([]Record, 0, len(t.byKey))
	for _, c := range models.AllCategories {
		for _, g := range models.AllGenders {
			out = append(out, t.byKey[key{c, g}].clone())
		}
	}
	return out
}

// DietMethods returns all diet methods in authored order.
func DietMethods() []DietMethod {
	t := get()
	out := make([]DietMethod, len(t.DietMethods))
	for i, m := range t.DietMethods {
		out[i] = m.clone()
	}
	return out
}

// LookupDietMethod returns the diet method with the given key.
func LookupDietMethod(k string) (DietMethod, bool) {
	m, ok := get().methods[k]
	if !ok {
		return DietMethod{}, false
	}
	return m.clone(), true
}

// MethodsFor resolves a record's diet method keys.
func MethodsFor(r Record) []DietMethod {
	out := make([]DietMethod, 0, len(r.DietMethods))
	for _, k := range r.DietMethods {
		if m, ok := LookupDietMethod(k); ok {
			out = append(out, m)
		}
	}
	return out
}

// EatingOutGuide returns the dining-out guide.
func EatingOutGuide() EatingOut {
	e := get().EatingOut
	e.Scenes = append([]Scene(nil), e.Scenes...)
	return e
}

// HabitGroups returns the micro-habit groups in authored order.
func HabitGroups() []HabitGroup {
	t := get()
	out := make([]HabitGroup, len(t.HabitGroups))
	for i, g := range t.HabitGroups {
		out[i] = HabitGroup{Name: g.Name, Habits: append([]Habit(nil), g.Habits...)}
	}
	return out
}

// HabitCount is the total number of micro-habits across all groups.
func HabitCount() int {
	n := 0
	for _, g := range get().HabitGroups {
		n += len(g.Habits)
	}
	return n
}

func (r *Record) clone() Record {
	c := *r
	c.Tips = append([]Tip(nil), r.Tips...)
	c.Foods = append([]Food(nil), r.Foods...)
	c.DietMethods = append([]string(nil), r.DietMethods...)
	if r.MythBuster != nil {
		mb := *r.MythBuster
		c.MythBuster = &mb
	}
	return c
}

func (m DietMethod) clone() DietMethod {
	m.Tips = append([]string(nil), m.Tips...)
	return m
}
