package lang

// Meta is a metadata map attached to a value that "supports metadata"
// (spec §3). Keys are typically keywords but the reader does not
// require that.
type Meta map[interface{}]interface{}

// IMeta is the capability spec §3 calls "supports metadata": a value
// that can carry and return a Meta map and rebuild itself with a new,
// merged one.
type IMeta interface {
	Meta() Meta
	WithMeta(Meta) interface{}
}

// mergeMeta merges new metadata over existing, new winning on key
// conflicts, per spec §4.10's "merged (new wins)" rule.
func mergeMeta(existing, incoming Meta) Meta {
	if len(existing) == 0 && len(incoming) == 0 {
		return nil
	}
	out := make(Meta, len(existing)+len(incoming))
	for k, v := range existing {
		out[k] = v
	}
	for k, v := range incoming {
		out[k] = v
	}
	return out
}

// attachMeta attaches m to v if v supports metadata, returning the
// (possibly new) value and whether attachment was possible. Used by
// the metadata reader (§4.10), which must error when the target does
// not accept metadata.
func attachMeta(v interface{}, m Meta) (interface{}, bool) {
	im, ok := v.(IMeta)
	if !ok {
		return v, false
	}
	return im.WithMeta(m), true
}
