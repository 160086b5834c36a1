package generate

import (
	"context"
	"fmt"
	"time"

	"github.com/hanpama/tstypes/internal/config"
	"github.com/hanpama/tstypes/internal/discovery"
	"github.com/hanpama/tstypes/internal/document"
	"github.com/hanpama/tstypes/internal/eventbus"
	"github.com/hanpama/tstypes/internal/events"
	"github.com/hanpama/tstypes/internal/language"
	"github.com/hanpama/tstypes/internal/schema"
	"github.com/hanpama/tstypes/internal/typegen"
)

// Options tune a run.
type Options struct {
	// SkipValidation parses documents without checking them against the
	// schema. Unknown fragments then surface from fragment composition.
	SkipValidation bool
}

// Run loads every source disc lists and resolves the declarations cfg
// describes.
func Run(ctx context.Context, cfg *config.Config, disc discovery.Discovery, opts Options) (res *Result, err error) {
	g, err := typegen.New(cfg)
	if err != nil {
		return nil, err
	}
	schemaNames, err := disc.ListSchemas(ctx)
	if err != nil {
		return nil, fmt.Errorf("list schemas: %w", err)
	}
	documentNames, err := disc.ListDocuments(ctx)
	if err != nil {
		return nil, fmt.Errorf("list documents: %w", err)
	}

	start := time.Now()
	eventbus.Publish(ctx, events.GenerateStart{
		ConfigHash: g.Config().Hash(),
		Schemas:    schemaNames,
		Documents:  documentNames,
	})
	defer func() {
		finish := events.GenerateFinish{Err: err, Duration: time.Since(start)}
		if res != nil {
			finish.Types = len(res.Types)
			finish.Operations = len(res.Operations)
		}
		eventbus.Publish(ctx, finish)
	}()

	s, err := loadSchema(ctx, disc, schemaNames)
	if err != nil {
		return nil, err
	}
	doc, err := loadDocuments(ctx, disc, documentNames)
	if err != nil {
		return nil, err
	}
	if !opts.SkipValidation {
		if err := language.ValidateQuery(s.ast, doc); err != nil {
			return nil, fmt.Errorf("invalid documents: %w", err)
		}
	}
	collection, err := document.Collect(s.model, doc)
	if err != nil {
		return nil, err
	}

	r := &resolver{gen: g, cache: typegen.NewCache(g), schema: s.model}
	res = &Result{MaybeDeclaration: g.DefineMaybe()}
	r.declarations(res)

	table := collection.FragmentTable()
	for _, def := range collection.Fragments {
		d, err := r.definition(ctx, def, table)
		if err != nil {
			return nil, err
		}
		res.Fragments = append(res.Fragments, d)
	}
	for _, def := range collection.Operations {
		d, err := r.definition(ctx, def, table)
		if err != nil {
			return nil, err
		}
		res.Operations = append(res.Operations, d)
	}
	return res, nil
}

type loadedSchema struct {
	ast   *language.Schema
	model *schema.Schema
}

func loadSchema(ctx context.Context, disc discovery.Discovery, names []string) (*loadedSchema, error) {
	sources := make([]*language.Source, 0, len(names))
	for _, name := range names {
		content, err := disc.Read(ctx, name)
		if err != nil {
			return nil, err
		}
		sources = append(sources, &language.Source{Name: name, Input: content})
	}
	doc, err := language.LoadSchema(sources...)
	if err != nil {
		return nil, fmt.Errorf("load schema: %w", err)
	}
	model, err := schema.BuildFromAST(doc)
	if err != nil {
		return nil, fmt.Errorf("build schema: %w", err)
	}
	return &loadedSchema{ast: doc, model: model}, nil
}

func loadDocuments(ctx context.Context, disc discovery.Discovery, names []string) (*language.QueryDocument, error) {
	docs := make([]*language.QueryDocument, 0, len(names))
	for _, name := range names {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := disc.Read(ctx, name)
		if err != nil {
			return nil, err
		}
		doc, err := language.ParseQuery(name, content)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		docs = append(docs, doc)
	}
	return language.MergeQueries(docs...), nil
}
