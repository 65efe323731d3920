package query

import (
	"github.com/go-logr/logr"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// Config holds the settings a [Sequence] carries into its operators.
// Sequences derived from another sequence inherit its Config.
type Config struct {
	// Locale selects the collation used to order string keys.
	// Defaults to language.Und, the CLDR root collation.
	Locale language.Tag

	// Logger receives engine traces at V(4) (per call) and V(5) (per
	// element). Defaults to logr.Discard().
	Logger logr.Logger
}

// DefaultConfig returns a [Config] populated with the defaults.
func DefaultConfig() Config {
	return Config{
		Locale: language.Und,
		Logger: logr.Discard(),
	}
}

// collator builds a fresh collator; collate.Collator is not safe for
// concurrent use, so one is made per ordering call.
func (c Config) collator() *collate.Collator {
	return collate.New(c.Locale)
}

func (c Config) logger(op string) logr.Logger {
	if c.Logger.GetSink() == nil {
		return logr.Discard()
	}
	return c.Logger.WithName(op)
}
