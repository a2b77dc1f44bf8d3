package diagnostics

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/datastax/cassandra-schema-builder/db"
	"github.com/stretchr/testify/assert"
)

func newTestDiagnostics() *Diagnostics {
	testDb := db.NewDbWithSession(db.NewSessionMock())
	return New(testDb, []string{"10.0.0.1"}, "store")
}

func TestClusterSnapshot(t *testing.T) {
	snapshot, err := newTestDiagnostics().Cluster()

	assert.Nil(t, err)
	assert.Equal(t, "test cluster", snapshot.ClusterName)
	assert.Equal(t, "4", snapshot.ProtocolVersion)
	assert.Equal(t, []string{"10.0.0.1"}, snapshot.ContactPoints)
	assert.Equal(t, "store", snapshot.LoggedKeyspace)
	assert.False(t, snapshot.Closing)
}

func TestClusterSnapshotReflectsClosing(t *testing.T) {
	testDb := db.NewDbWithSession(db.NewSessionMock())
	diagnostics := New(testDb, nil, "")

	testDb.Close()
	snapshot, err := diagnostics.Cluster()

	assert.Nil(t, err)
	assert.True(t, snapshot.Closing)
}

func TestHosts(t *testing.T) {
	hosts, err := newTestDiagnostics().Hosts()

	assert.Nil(t, err)
	if assert.Len(t, hosts, 2) {
		assert.Equal(t, Host{
			Address:        "10.0.0.1",
			DataCenter:     "dc1",
			Rack:           "rack1",
			ReleaseVersion: "3.11.6",
			Local:          true,
		}, hosts[0])
		assert.Equal(t, Host{
			Address:        "10.0.0.2",
			DataCenter:     "dc1",
			Rack:           "rack2",
			ReleaseVersion: "3.11.6",
		}, hosts[1])
	}
}

func TestRouterEndpoints(t *testing.T) {
	router := Router(newTestDiagnostics())

	items := []struct {
		path     string
		contains string
	}{
		{"/diagnostics/cluster", `"clusterName":"test cluster"`},
		{"/diagnostics/hosts", `"address":"10.0.0.2"`},
	}

	for _, item := range items {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, item.path, nil))

		assert.Equal(t, http.StatusOK, w.Code, item.path)
		assert.Equal(t, "application/json; charset=UTF-8", w.Header().Get("Content-Type"), item.path)
		assert.Contains(t, w.Body.String(), item.contains, item.path)

		var result map[string]interface{}
		assert.Nil(t, json.Unmarshal(w.Body.Bytes(), &result), item.path)
		assert.Contains(t, result, "data", item.path)
	}
}
