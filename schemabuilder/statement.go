package schemabuilder

import (
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/atomic"
)

// SchemaStatement is a fully configured DDL statement. Build validates the
// accumulated state and returns the statement text. The text is computed
// once; repeated calls return the same result and the returned string may be
// read concurrently.
type SchemaStatement interface {
	Build() (string, error)
}

// Reserved CQL keywords. Identifiers are matched case-sensitively, so "ADD"
// is a valid column name while "add" is not.
var reservedKeywords = keywordSet(
	"add,allow,alter,and,any,apply,asc,authorize,batch,begin,by,columnfamily," +
		"create,delete,desc,drop,each_quorum,from,grant,in,index,inet,infinity," +
		"insert,into,keyspace,keyspaces,limit,local_one,local_quorum,modify,nan," +
		"norecursive,of,on,order,password,primary,quorum,rename,revoke,schema," +
		"select,set,table,three,to,token,truncate,two,unlogged,update,use,using," +
		"where,with")

func keywordSet(csv string) map[string]bool {
	words := strings.Split(csv, ",")
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}

func validateNotEmpty(value string, label string) error {
	if strings.TrimSpace(value) == "" {
		return NewConfigurationError(label + " should not be null or blank")
	}
	return nil
}

func validateNotNil(value ColumnType, label string) error {
	if value == nil {
		return NewConfigurationError(label + " should not be null")
	}
	return nil
}

func validateNotKeyword(name string, message string) error {
	if reservedKeywords[name] {
		return NewConfigurationError(message)
	}
	return nil
}

// validateIdentifier combines the empty and reserved keyword checks applied
// to every name-accepting call. kind is the human readable role of the name,
// e.g. "table name" or "partition key name".
func validateIdentifier(name string, label string, kind string) error {
	if err := validateNotEmpty(name, label); err != nil {
		return err
	}
	return validateNotKeyword(name,
		fmt.Sprintf("The %s '%s' is not allowed because it is a reserved keyword", kind, name))
}

func validateRateValue(value float64, property string) error {
	if value < 0 || value > 1.0 {
		return NewConfigurationError(property + " should be between 0 and 1")
	}
	return nil
}

// statementCache memoizes the render result so that a builder becomes
// immutable in effect after the first Build call. The fields are atomics so
// the computed text can be read from other goroutines once published.
type statementCache struct {
	done atomic.Bool
	text atomic.String
	err  atomic.Error
}

func (c *statementCache) build(render func() (string, error)) (string, error) {
	if !c.done.Load() {
		text, err := render()
		c.text.Store(text)
		c.err.Store(err)
		c.done.Store(true)
	}
	return c.text.Load(), c.err.Load()
}

func formatFloat(value float64) string {
	return strconv.FormatFloat(value, 'g', -1, 64)
}

// qualifiedName renders "<keyspace>.<name>" or just "<name>" when no
// keyspace was supplied.
func qualifiedName(keyspaceName string, name string) string {
	if keyspaceName == "" {
		return name
	}
	return keyspaceName + "." + name
}
