package render

// Mode selects the text layout.
type Mode int

const (
	// ModeGroups prints walls as a glyph and floor cells as their group id.
	ModeGroups Mode = iota
	// ModeBlocks prints walls as a doubled block glyph and floors as blanks.
	ModeBlocks
)

// String returns "groups" or "blocks".
func (m Mode) String() string {
	if m == ModeBlocks {
		return "blocks"
	}
	return "groups"
}

// ParseMode maps "groups" and "blocks" to a Mode. ok is false for anything else.
func ParseMode(s string) (m Mode, ok bool) {
	switch s {
	case "groups":
		return ModeGroups, true
	case "blocks":
		return ModeBlocks, true
	default:
		return ModeGroups, false
	}
}

const (
	defaultGroupsWall = "X"
	defaultBlocksWall = "█"
)

// Options configures Text, View and Animate.
type Options struct {
	// Mode selects the text layout. Default ModeGroups.
	Mode Mode
	// WallGlyph overrides the wall token. Empty selects the mode default.
	WallGlyph string
	// BlankGroup, when HasBlank is set, is printed as blank space instead of its id.
	BlankGroup int
	HasBlank   bool
	// LeadingLines is the number of empty lines written before the first row.
	LeadingLines int
	// TrailingLines is the number of empty lines written after the last row.
	TrailingLines int
}

// Option configures Options.
type Option func(*Options)

// DefaultOptions returns ModeGroups with the default wall glyph, no blank group
// and no leading or trailing lines.
func DefaultOptions() Options {
	return Options{Mode: ModeGroups}
}

// WithMode selects the text layout.
func WithMode(m Mode) Option {
	return func(o *Options) {
		o.Mode = m
	}
}

// WithWallGlyph overrides the wall token; an empty glyph keeps the default.
func WithWallGlyph(glyph string) Option {
	return func(o *Options) {
		if glyph != "" {
			o.WallGlyph = glyph
		}
	}
}

// WithBlankGroup prints floor cells of group id as blank space.
// Callers usually pass the single id left in a finished grid (maze.Grid.Groups).
func WithBlankGroup(id int) Option {
	return func(o *Options) {
		o.BlankGroup = id
		o.HasBlank = true
	}
}

// WithLeadingLines writes n empty lines before the first row. Negative n is ignored.
func WithLeadingLines(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.LeadingLines = n
		}
	}
}

// WithTrailingLines writes n empty lines after the last row. Negative n is ignored.
func WithTrailingLines(n int) Option {
	return func(o *Options) {
		if n >= 0 {
			o.TrailingLines = n
		}
	}
}

func resolve(opts []Option) Options {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.WallGlyph == "" {
		if o.Mode == ModeBlocks {
			o.WallGlyph = defaultBlocksWall
		} else {
			o.WallGlyph = defaultGroupsWall
		}
	}
	return o
}

// blank reports whether a floor cell of group id prints as blank.
func (o Options) blank(id int) bool {
	return o.HasBlank && id == o.BlankGroup
}
