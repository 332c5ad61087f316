// Package generator turns parametric package configurations into LibrePCB
// library elements. Each family (QFN, DFN, SOIC, chip) contributes a config
// table and a build function; the batch runner serializes the built elements,
// writes optional 3D models and persists the UUID cache once at the end.
package generator

import (
	"context"
	"fmt"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/OpenTraceLab/OpenTraceParts/internal/ctxlog"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/step"
	"github.com/OpenTraceLab/OpenTraceParts/pkg/uuidcache"
)

// formatValue renders a dimension for prose descriptions: the shortest
// decimal form, but never without a fractional part (3 mm prints as "3.0").
func formatValue(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// generatedWith is appended to every element description so libraries can be
// traced back to the tool that produced them.
func generatedWith(tool string) string {
	return "\n\nGenerated with OpenTraceParts (" + tool + ")"
}

// courtyardLineWidth is the line width of courtyard outlines.
const courtyardLineWidth = 0.2

// Element is anything the generators can write into a library directory.
// All sexp library elements (package, component, device, symbol) satisfy it.
type Element interface {
	Serialize(outputDir string) error
	String() string
}

// Options carries the run-wide settings shared by all families.
type Options struct {
	Author string
	// Created overrides the element creation timestamps. Empty keeps the
	// per-family dates so regenerated libraries do not churn.
	Created string
	// Models enables 3D model emission.
	Models bool
}

// Resolver binds the UUID cache to one element name, mirroring how every
// identifier of an element shares the same category and full name prefix.
type Resolver struct {
	cache    *uuidcache.Cache
	category string
	fullName string
}

// NewResolver returns a resolver minting UUIDs under category and fullName.
func NewResolver(cache *uuidcache.Cache, category, fullName string) *Resolver {
	return &Resolver{cache: cache, category: category, fullName: fullName}
}

// UUID resolves the identifier to a stable UUID.
func (r *Resolver) UUID(identifier string) string {
	return r.cache.Resolve(uuidcache.Key(r.category, r.fullName, identifier))
}

// Item is one buildable artifact of a batch. Build runs inside the per-item
// error boundary: a returned error or a panic fails the item, never the run.
type Item struct {
	Name  string
	Build func(ctx context.Context) ([]Element, *step.Assembly, error)
}

// Summary is the outcome of a batch run.
type Summary struct {
	Generated  int
	Failed     int
	Duplicates int
}

// buildItem invokes the item build function, converting panics into errors
// so one bad configuration cannot take down the whole batch.
func buildItem(ctx context.Context, item Item) (elements []Element, model *step.Assembly, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("building %s: %v", item.Name, r)
		}
	}()
	return item.Build(ctx)
}

// Run generates all items into outDir, writing 3D models below modelDir when
// set. Items failing to build or serialize are counted and logged but do not
// stop the run. The UUID cache is saved once at the end; a failing save is
// fatal because losing minted UUIDs would change element identities on the
// next run.
func Run(ctx context.Context, cache *uuidcache.Cache, outDir, modelDir string, items []Item) (Summary, error) {
	log := ctxlog.FromContext(ctx)

	var summary Summary
	seen := make(map[string]bool, len(items))
	for _, item := range items {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		if seen[item.Name] {
			log.Warn("duplicate element name", "name", item.Name)
			summary.Duplicates++
		}
		seen[item.Name] = true

		elements, model, err := buildItem(ctx, item)
		if err != nil {
			log.Error("build failed", "name", item.Name, "error", err)
			summary.Failed++
			continue
		}

		failed := false
		for _, el := range elements {
			if err := el.Serialize(outDir); err != nil {
				log.Error("write failed", "name", item.Name, "error", err)
				failed = true
				break
			}
		}
		if !failed && model != nil && modelDir != "" {
			path := filepath.Join(modelDir, item.Name+".step")
			if err := model.Save(path, false); err != nil {
				log.Error("model write failed", "name", item.Name, "error", err)
				failed = true
			}
		}
		if failed {
			summary.Failed++
			continue
		}

		log.Info("generated", "name", item.Name, "elements", len(elements))
		summary.Generated++
	}

	if cache.Dirty() {
		if err := cache.Save(); err != nil {
			return summary, fmt.Errorf("saving uuid cache: %w", err)
		}
	}
	return summary, nil
}
