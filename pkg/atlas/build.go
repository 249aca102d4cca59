package atlas

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/censusatlas/atlasgen/pkg/atlas/metadata"
	"github.com/censusatlas/atlasgen/pkg/atlas/models"
	"github.com/censusatlas/atlasgen/pkg/atlas/parser"
)

// Sentinel descriptions substituted when a lookup table has no entry for
// a code. They deliberately survive into the output so missing metadata
// stays visible to the front end.
const (
	topicNotFound          = "not found in topic metadata!"
	variableNotFound       = "not found in variable metadata!"
	classificationNotFound = "not found in classification metadata!"
)

var titleCaser = cases.Title(language.English)

// Builder assembles atlas content from one workbook.
type Builder struct {
	opts Options
	meta metadata.Set
}

// NewBuilder returns a Builder over the given lookup tables.
func NewBuilder(meta metadata.Set, opts Options) *Builder {
	if opts.Log == nil {
		opts.Log = DefaultOptions().Log
	}
	return &Builder{opts: opts, meta: meta}
}

// BuildTopics walks the index sheet and assembles the topic content
// tree. Topics are deduplicated by resolved name (case- and
// whitespace-folded); each index row's variable is appended to its topic
// in row order. Rows without a topic identifier or without a variable
// hyperlink are skipped with a diagnostic.
func (b *Builder) BuildTopics(f *excelize.File) ([]models.Topic, error) {
	rows, err := parser.ReadIndex(f, b.opts.IndexSheet)
	if err != nil {
		return nil, fmt.Errorf("index sheet %q: %w", b.opts.IndexSheet, err)
	}

	var topics []models.Topic
	seen := make(map[string]int) // folded topic name -> position in topics

	for _, row := range rows {
		ident := row.Cell(b.opts.TopicColumn).Value
		if ident == "" {
			b.opts.Log.Printf("No topic name found for row %v, cannot process", row.Values())
			continue
		}
		name, desc := b.resolveTopic(ident)

		variable, ok, err := b.buildVariable(f, row)
		if err != nil {
			return nil, err
		}
		if !ok {
			continue
		}

		key := strings.ToLower(strings.TrimSpace(name))
		if pos, dup := seen[key]; dup {
			topics[pos].Variables = append(topics[pos].Variables, variable)
			continue
		}
		seen[key] = len(topics)
		topics = append(topics, models.Topic{
			Name:      name,
			Slug:      Slugify(name),
			Desc:      desc,
			Variables: []models.Variable{variable},
		})
	}
	return topics, nil
}

func (b *Builder) resolveTopic(ident string) (name, desc string) {
	meta, ok := b.meta.Topic(ident)
	if !ok {
		b.opts.Log.Printf("No metadata found for topic %s", ident)
		return ident, topicNotFound
	}
	return meta.Name, meta.Desc
}

// buildVariable resolves one index row into a variable. ok is false when
// the row does not reference an in-workbook variable.
func (b *Builder) buildVariable(f *excelize.File, row parser.IndexRow) (v models.Variable, ok bool, err error) {
	cell := row.Cell(b.opts.VariableColumn)
	if cell.Hyperlink == "" {
		b.opts.Log.Printf("Ignoring variable %s as it does not link to a variable in spreadsheet.", cell.Value)
		return models.Variable{}, false, nil
	}
	code := parser.SheetFromHyperlink(cell.Hyperlink)

	name, desc, units := b.resolveVariable(code)

	classifications, err := b.buildClassifications(f, code, row.Cell(b.opts.KeepColumn).Value)
	if err != nil {
		return models.Variable{}, false, err
	}
	b.applyDefaults(classifications, row, code)

	return models.Variable{
		Name:            name,
		Code:            code,
		Slug:            Slugify(name),
		Desc:            desc,
		Units:           units,
		Comparison2011:  comparable2011(row.Cell(b.opts.ComparisonColumn).Value),
		Classifications: classifications,
	}, true, nil
}

func (b *Builder) resolveVariable(code string) (name, desc, units string) {
	meta, ok := b.meta.Variable(code)
	if !ok {
		b.opts.Log.Printf("No metadata found for variable %s", code)
		name = titleCaser.String(strings.TrimSpace(strings.ReplaceAll(code, "_", " ")))
		return name, variableNotFound, variableNotFound
	}
	return meta.Name, meta.Desc, meta.Units
}

func (b *Builder) buildClassifications(f *excelize.File, sheet, keep string) ([]models.Classification, error) {
	cols, err := parser.HeaderClassifications(f, sheet, b.opts.NotData)
	if err != nil {
		return nil, fmt.Errorf("variable sheet %q: %w", sheet, err)
	}
	cols = parser.FilterKeep(cols, keep)

	var result []models.Classification
	for _, col := range cols {
		code := strings.ReplaceAll(col.Code, " ", "")
		desc := classificationNotFound
		if meta, ok := b.meta.Classification(code); ok {
			desc = meta.Desc
		} else {
			b.opts.Log.Printf("No metadata found for classification %s", code)
		}

		cats, err := parser.Categories(f, sheet, col, b.opts.NotData)
		if err != nil {
			return nil, err
		}
		categories := make([]models.Category, 0, len(cats))
		for _, c := range cats {
			slug := Slugify(c.Name)
			categories = append(categories, models.Category{
				Name: c.Name,
				Slug: slug,
				Code: slug + "=" + c.Codes,
			})
		}

		result = append(result, models.Classification{
			Code:       code,
			Slug:       Slugify(code),
			Desc:       desc,
			Categories: categories,
		})
	}
	return result, nil
}

// applyDefaults marks which kept classification each map style should
// use by default, matching the index row's configured suffix against the
// classification codes.
func (b *Builder) applyDefaults(classifications []models.Classification, row parser.IndexRow, varCode string) {
	if suffix := cleanSuffix(row.Cell(b.opts.DefaultClassColumn).Value); suffix != "" {
		if i := matchSuffix(classifications, suffix); i >= 0 {
			classifications[i].ChoroplethDefault = true
		} else {
			b.opts.Log.Printf("Default classification %s could not be found for variable %s", suffix, varCode)
		}
	}
	suffix := strings.TrimSpace(row.Cell(b.opts.DotDensityColumn).Value)
	if suffix == "" || strings.EqualFold(suffix, "no") {
		return
	}
	if i := matchSuffix(classifications, suffix); i >= 0 {
		classifications[i].DotDensityDefault = true
	} else {
		b.opts.Log.Printf("Dot density classification %s could not be found for variable %s", suffix, varCode)
	}
}

func cleanSuffix(s string) string {
	return strings.TrimSpace(strings.ReplaceAll(s, "(only one classification)", ""))
}

func matchSuffix(classifications []models.Classification, suffix string) int {
	for i, c := range classifications {
		if strings.HasSuffix(strings.ToLower(c.Code), strings.ToLower(suffix)) {
			return i
		}
	}
	return -1
}

func comparable2011(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "yes")
}
