package batchtree

import (
	"io"
	"time"

	"github.com/hupe1980/batchtree/codec"
	"github.com/hupe1980/batchtree/document"
	"github.com/hupe1980/batchtree/document/xmldoc"
	"github.com/hupe1980/batchtree/engine"
	"github.com/hupe1980/batchtree/itemid"
	"github.com/hupe1980/batchtree/value"
)

// Tree is the public facade over the tree engine. It adds structured
// logging, metrics and error translation around the core operations.
//
// A Tree is not safe for concurrent mutation; see the package
// documentation for the required access discipline.
type Tree struct {
	engine  *engine.Engine
	codec   codec.Codec
	logger  *Logger
	metrics MetricsCollector
}

// New returns an empty tree. Build (or BuildXML) must be called exactly
// once before batches are ingested or queried.
func New(optFns ...Option) *Tree {
	opts := options{
		codec:   codec.Default,
		logger:  NoopLogger(),
		metrics: NoopMetricsCollector{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Tree{
		engine:  engine.New(),
		codec:   opts.codec,
		logger:  opts.logger,
		metrics: opts.metrics,
	}
}

// Build constructs the item tree from a structural document.
func (t *Tree) Build(doc document.Node) error {
	start := time.Now()
	err := t.engine.Build(doc)
	t.metrics.RecordBuild(time.Since(start), err)
	t.logger.LogBuild(t.engine.ItemCount(), err)
	return translateError(err)
}

// BuildXML parses an XML structural document and builds the item tree
// from it.
func (t *Tree) BuildXML(r io.Reader) error {
	root, err := xmldoc.Parse(r)
	if err != nil {
		return err
	}
	return t.Build(root)
}

// AddBatch ingests a batch document. Blocks committed before a failure
// stay committed; the failing block's index never joins the registry.
func (t *Tree) AddBatch(doc document.Node) error {
	start := time.Now()
	before := t.engine.BatchCount()
	err := t.engine.AddBatch(doc)
	committed := t.engine.BatchCount() - before
	t.metrics.RecordAddBatch(committed, time.Since(start), err)
	t.logger.LogAddBatch(committed, err)
	return translateError(err)
}

// AddBatchXML parses an XML batch document and ingests it.
func (t *Tree) AddBatchXML(r io.Reader) error {
	root, err := xmldoc.Parse(r)
	if err != nil {
		return err
	}
	return t.AddBatch(root)
}

// ItemName resolves a packed id to the item's name. It reports false
// when the id does not address a named item in the built tree.
func (t *Tree) ItemName(id itemid.ID) (string, bool) {
	return t.engine.ItemName(id)
}

// ItemByName returns the first item with the given name in pre-order.
func (t *Tree) ItemByName(name string) (*engine.Item, bool) {
	return t.engine.ItemByName(name)
}

// BatchIndices returns the registered batch indices in ascending order.
func (t *Tree) BatchIndices() []uint32 {
	return t.engine.BatchIndices()
}

// BatchValues projects one batch over the whole tree: one entry per item
// name, with the "none" sentinel for items holding no value in this
// batch. The returned values are independent copies owned by the caller.
func (t *Tree) BatchValues(index uint32) (map[string]value.Value, error) {
	start := time.Now()
	vals, err := t.engine.BatchValues(index)
	t.metrics.RecordQuery(time.Since(start), err)
	t.logger.WithBatch(index).LogQuery("batch_values", len(vals), err)
	return vals, translateError(err)
}

// ItemValues returns every value the named item holds, keyed by batch
// index. The returned values are independent copies owned by the caller.
func (t *Tree) ItemValues(name string) (map[uint32]value.Value, error) {
	start := time.Now()
	vals, err := t.engine.ItemValues(name)
	t.metrics.RecordQuery(time.Since(start), err)
	t.logger.WithItem(name).LogQuery("item_values", len(vals), err)
	return vals, translateError(err)
}

// DeleteBatch retires a batch, evicting members that were only
// referenced by it.
func (t *Tree) DeleteBatch(index uint32) error {
	start := time.Now()
	err := t.engine.DeleteBatch(index)
	t.metrics.RecordDelete(time.Since(start), err)
	t.logger.LogDeleteBatch(index, err)
	return translateError(err)
}

// DumpBatch writes one batch's name-to-value projection to w using the
// configured codec.
func (t *Tree) DumpBatch(w io.Writer, index uint32) error {
	vals, err := t.BatchValues(index)
	if err != nil {
		return err
	}
	data, err := t.codec.Marshal(vals)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
