package db

import "errors"

// System table queries backing the diagnostics endpoints.
const (
	LocalNodeQuery = "SELECT cluster_name, data_center, rack, release_version, native_protocol_version FROM system.local"
	PeerNodesQuery = "SELECT peer, data_center, rack, release_version FROM system.peers"
)

// LocalNode retrieves the system.local row of the connected node.
func (db *Db) LocalNode() (map[string]interface{}, error) {
	result, err := db.session.ExecuteIter(LocalNodeQuery, NewQueryOptions())
	if err != nil {
		return nil, err
	}
	rows := result.Values()
	if len(rows) == 0 {
		return nil, errors.New("system.local returned no rows")
	}
	return rows[0], nil
}

// PeerNodes retrieves one row per peer of the connected node.
func (db *Db) PeerNodes() ([]map[string]interface{}, error) {
	result, err := db.session.ExecuteIter(PeerNodesQuery, NewQueryOptions())
	if err != nil {
		return nil, err
	}
	return result.Values(), nil
}
