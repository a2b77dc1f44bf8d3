package db

import (
	"fmt"
	"sort"
)

// CreateKeyspace creates a keyspace with NetworkTopologyStrategy replication.
// Data centers are rendered in name order so the statement text is stable.
func (db *Db) CreateKeyspace(name string, dcReplicas map[string]int, options *QueryOptions) error {
	// TODO: Escape keyspace and datacenter names?
	dcNames := make([]string, 0, len(dcReplicas))
	for dcName := range dcReplicas {
		dcNames = append(dcNames, dcName)
	}
	sort.Strings(dcNames)

	dcs := ""
	for _, dcName := range dcNames {
		if len(dcs) > 0 {
			dcs += ", "
		}
		dcs += fmt.Sprintf("'%s': %d", dcName, dcReplicas[dcName])
	}

	query := fmt.Sprintf(
		"CREATE KEYSPACE %s WITH REPLICATION = { 'class': 'NetworkTopologyStrategy', %s }", name, dcs)
	return db.session.Execute(query, options)
}

// DropKeyspace removes a keyspace and everything it contains.
func (db *Db) DropKeyspace(name string, options *QueryOptions) error {
	query := fmt.Sprintf("DROP KEYSPACE %s", name)
	return db.session.Execute(query, options)
}
