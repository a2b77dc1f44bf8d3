package diagnostics

import (
	"runtime/debug"

	"github.com/datastax/cassandra-schema-builder/db"
)

const driverModulePath = "github.com/gocql/gocql"

// ClusterSnapshot is a point-in-time view of the connection state. Fields are
// read independently from the system tables, there is no atomicity across
// them.
type ClusterSnapshot struct {
	ClusterName     string   `json:"clusterName"`
	DriverVersion   string   `json:"driverVersion"`
	ProtocolVersion string   `json:"protocolVersion"`
	ContactPoints   []string `json:"contactPoints"`
	LoggedKeyspace  string   `json:"loggedKeyspace,omitempty"`
	Closing         bool     `json:"closing"`
}

// Host describes one node of the cluster as reported by system.local and
// system.peers.
type Host struct {
	Address        string `json:"address"`
	DataCenter     string `json:"dataCenter"`
	Rack           string `json:"rack"`
	ReleaseVersion string `json:"releaseVersion"`
	Local          bool   `json:"local"`
}

// Diagnostics reads connection and topology state for operators. Every call
// queries the cluster again, nothing is cached.
type Diagnostics struct {
	dbClient       *db.Db
	contactPoints  []string
	loggedKeyspace string
}

func New(dbClient *db.Db, contactPoints []string, loggedKeyspace string) *Diagnostics {
	return &Diagnostics{
		dbClient:       dbClient,
		contactPoints:  contactPoints,
		loggedKeyspace: loggedKeyspace,
	}
}

// Cluster reports the state of the control connection.
func (d *Diagnostics) Cluster() (*ClusterSnapshot, error) {
	local, err := d.dbClient.LocalNode()
	if err != nil {
		return nil, err
	}

	return &ClusterSnapshot{
		ClusterName:     stringColumn(local, "cluster_name"),
		DriverVersion:   driverVersion(),
		ProtocolVersion: stringColumn(local, "native_protocol_version"),
		ContactPoints:   d.contactPoints,
		LoggedKeyspace:  d.loggedKeyspace,
		Closing:         d.dbClient.IsClosing(),
	}, nil
}

// Hosts reports the connected node followed by its peers.
func (d *Diagnostics) Hosts() ([]Host, error) {
	local, err := d.dbClient.LocalNode()
	if err != nil {
		return nil, err
	}
	peers, err := d.dbClient.PeerNodes()
	if err != nil {
		return nil, err
	}

	localAddress := ""
	if len(d.contactPoints) > 0 {
		localAddress = d.contactPoints[0]
	}

	hosts := []Host{{
		Address:        localAddress,
		DataCenter:     stringColumn(local, "data_center"),
		Rack:           stringColumn(local, "rack"),
		ReleaseVersion: stringColumn(local, "release_version"),
		Local:          true,
	}}
	for _, peer := range peers {
		hosts = append(hosts, Host{
			Address:        stringColumn(peer, "peer"),
			DataCenter:     stringColumn(peer, "data_center"),
			Rack:           stringColumn(peer, "rack"),
			ReleaseVersion: stringColumn(peer, "release_version"),
		})
	}
	return hosts, nil
}

func stringColumn(row map[string]interface{}, name string) string {
	if value, ok := row[name].(string); ok {
		return value
	}
	return ""
}

// driverVersion reads the gocql version pinned by the embedding binary.
func driverVersion() string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return "unknown"
	}
	for _, dep := range info.Deps {
		if dep.Path == driverModulePath {
			return dep.Version
		}
	}
	return "unknown"
}
