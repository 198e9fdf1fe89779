package hpack

import "gopkg.in/yaml.v3"

// DefaultDynamicTableSize is RFC 7541 §4.2's mandated initial value for
// SETTINGS_HEADER_TABLE_SIZE when a peer hasn't advertised one.
const DefaultDynamicTableSize = 4096

// DefaultMaxStringLength bounds a single decoded name or value, guarding
// against a peer driving unbounded allocation via a huge string literal.
const DefaultMaxStringLength = 16384

// Config holds the tunables that govern one HPACK connection's encoder and
// decoder. It is designed to be loaded from YAML alongside the rest of a
// connection's settings.
type Config struct {
	// InitialTableSize seeds both the encoder's and decoder's dynamic table
	// capacity before any SETTINGS/size-update exchange happens.
	InitialTableSize uint32 `yaml:"initial_table_size"`

	// PeerMaxTableSize is the largest capacity this side will ever honor for
	// its own dynamic table (RFC 7541 §4.2); a decoded size update above
	// this is a protocol error, never silently clamped.
	PeerMaxTableSize uint32 `yaml:"peer_max_table_size"`

	// MaxStringLength bounds a single decoded string literal's length.
	MaxStringLength int `yaml:"max_string_length"`

	// NeverIndexNames lists header names the encoder never inserts into the
	// dynamic table: a field that exactly matches a table entry is still
	// emitted as Indexed, any other as literal-without-indexing (or
	// literal-never-indexed, if also marked Sensitive) - typically
	// high-cardinality or one-shot names where indexing wastes table space.
	NeverIndexNames []string `yaml:"never_index_names"`
}

// DefaultNeverIndexNames lists the header names spec §4.7 treats as
// volatile or high-cardinality by default: indexing them would either churn
// the dynamic table with one-shot values (set-cookie, etag, content-length,
// the conditional-request dates) or leak request-specific state across
// requests on the same connection (:path, location). DefaultConfig uses
// this list; callers who want the RFC's original indexing-everything
// behavior can set Config.NeverIndexNames to nil explicitly.
var DefaultNeverIndexNames = []string{
	":path",
	"set-cookie",
	"content-length",
	"etag",
	"if-modified-since",
	"if-none-match",
	"location",
	"date",
}

// DefaultConfig returns the RFC 7541 baseline configuration: a 4096-byte
// table, no cap above the default, 16KiB strings, and spec §4.7's default
// never-index name list.
func DefaultConfig() Config {
	return Config{
		InitialTableSize: DefaultDynamicTableSize,
		PeerMaxTableSize: DefaultDynamicTableSize,
		MaxStringLength:  DefaultMaxStringLength,
		NeverIndexNames:  append([]string(nil), DefaultNeverIndexNames...),
	}
}

// LoadConfig parses a YAML-encoded Config on top of DefaultConfig, so fields
// the document omits keep their default values. MaxStringLength and
// PeerMaxTableSize are also reset to their defaults when the document sets
// them to zero; other fields keep an explicit zero or empty value.
func LoadConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if cfg.MaxStringLength == 0 {
		cfg.MaxStringLength = DefaultMaxStringLength
	}
	if cfg.PeerMaxTableSize == 0 {
		cfg.PeerMaxTableSize = DefaultDynamicTableSize
	}
	return cfg, nil
}

// neverIndexSet builds a lookup set out of NeverIndexNames for the encoder's
// hot path.
func (c Config) neverIndexSet() map[string]struct{} {
	if len(c.NeverIndexNames) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(c.NeverIndexNames))
	for _, n := range c.NeverIndexNames {
		set[n] = struct{}{}
	}
	return set
}
