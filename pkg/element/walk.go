package element

// Walk visits records and their descendants depth-first in pre-order,
// the traversal order every subsystem shares. The visitor returns false
// to stop the walk; Walk reports whether the walk ran to completion.
func Walk(records []*Record, visit func(*Record) bool) bool {
	for _, rec := range records {
		if !visit(rec) {
			return false
		}
		if !Walk(rec.Children, visit) {
			return false
		}
	}
	return true
}

// FindByName returns the first record in pre-order whose Name matches,
// or nil. Names are assumed unique tree-wide; the first match is
// authoritative.
func FindByName(records []*Record, name string) *Record {
	var found *Record
	Walk(records, func(rec *Record) bool {
		if rec.Name == name {
			found = rec
			return false
		}
		return true
	})
	return found
}

// CloneConfig deep-copies the config-only projection of records: type,
// name, properties and children, with live widget handles and parameter
// cells excluded. The tree shape is preserved.
func CloneConfig(records []*Record) []*Record {
	out := make([]*Record, 0, len(records))
	for _, rec := range records {
		out = append(out, &Record{
			Type:       rec.Type,
			Name:       rec.Name,
			Properties: rec.Properties.Clone(),
			Children:   CloneConfig(rec.Children),
		})
	}
	return out
}
