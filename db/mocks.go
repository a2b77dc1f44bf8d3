package db

import (
	"github.com/gocql/gocql"
	"github.com/stretchr/testify/mock"
)

type SessionMock struct {
	mock.Mock
}

func (o *SessionMock) Execute(query string, options *QueryOptions, values ...interface{}) error {
	args := o.Called(query, options, values)
	return args.Error(0)
}

func (o *SessionMock) ExecuteIter(query string, options *QueryOptions, values ...interface{}) (ResultSet, error) {
	args := o.Called(query, options, values)
	return args.Get(0).(ResultSet), args.Error(1)
}

func (o *SessionMock) KeyspaceMetadata(keyspaceName string) (*gocql.KeyspaceMetadata, error) {
	args := o.Called(keyspaceName)
	return args.Get(0).(*gocql.KeyspaceMetadata), args.Error(1)
}

func (o *SessionMock) Close() {
	o.Called()
}

type ResultMock struct {
	mock.Mock
}

func (o *ResultMock) PageState() string {
	return o.Called().String(0)
}

func (o *ResultMock) Values() []map[string]interface{} {
	args := o.Called()
	return args.Get(0).([]map[string]interface{})
}

// NewResultMock wraps fixed rows in a ResultSet.
func NewResultMock(values []map[string]interface{}) *ResultMock {
	resultMock := &ResultMock{}
	resultMock.
		On("PageState").Return("").
		On("Values").Return(values)
	return resultMock
}

// NewSessionMock builds a session that answers the system table queries the
// way a small two node cluster would.
func NewSessionMock() *SessionMock {
	sessionMock := &SessionMock{}

	sessionMock.
		On("ExecuteIter", "SELECT keyspace_name FROM system_schema.keyspaces", mock.Anything, mock.Anything).
		Return(NewResultMock([]map[string]interface{}{
			{"keyspace_name": "system"},
			{"keyspace_name": "store"},
		}), nil)

	sessionMock.
		On("ExecuteIter", LocalNodeQuery, mock.Anything, mock.Anything).
		Return(NewResultMock([]map[string]interface{}{
			{
				"cluster_name":            "test cluster",
				"data_center":             "dc1",
				"rack":                    "rack1",
				"release_version":         "3.11.6",
				"native_protocol_version": "4",
			},
		}), nil)

	sessionMock.
		On("ExecuteIter", PeerNodesQuery, mock.Anything, mock.Anything).
		Return(NewResultMock([]map[string]interface{}{
			{
				"peer":            "10.0.0.2",
				"data_center":     "dc1",
				"rack":            "rack2",
				"release_version": "3.11.6",
			},
		}), nil)

	sessionMock.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil)
	sessionMock.On("Close").Return()

	return sessionMock
}
