package cache

// Keyer builds cache keys for pipeline artifacts.
type Keyer interface {
	// TypingsKey is the key of rendered declarations.
	TypingsKey(inputHash string, opts TypingsKeyOpts) string

	// GraphKey is the key of a rendered typing-graph dump.
	GraphKey(inputHash string, opts GraphKeyOpts) string
}

// TypingsKeyOpts holds every option that changes rendered declarations.
type TypingsKeyOpts struct {
	Name              string `json:"name"`
	Query             string `json:"query,omitempty"`
	StringDelimiter   string `json:"string_delimiter"`
	Indentation       string `json:"indentation"`
	Sort              bool   `json:"sort"`
	TypeScriptVersion string `json:"typescript_version"`
	Strategy          string `json:"strategy"`
	Partition         string `json:"partition"`
	WrapArrays        bool   `json:"wrap_arrays"`
}

// GraphKeyOpts holds every option that changes a graph dump.
type GraphKeyOpts struct {
	Name      string `json:"name"`
	Query     string `json:"query,omitempty"`
	Partition string `json:"partition"`
	Format    string `json:"format"`
	Detailed  bool   `json:"detailed"`
}

// DefaultKeyer produces unscoped keys of the form "kind:sha256".
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return &DefaultKeyer{}
}

// TypingsKey hashes the input hash together with the render options.
func (k *DefaultKeyer) TypingsKey(inputHash string, opts TypingsKeyOpts) string {
	return hashKey("typings", inputHash, opts)
}

// GraphKey hashes the input hash together with the dump options.
func (k *DefaultKeyer) GraphKey(inputHash string, opts GraphKeyOpts) string {
	return hashKey("graph", inputHash, opts)
}

var _ Keyer = (*DefaultKeyer)(nil)
