package main

import "github.com/datastax/cassandra-schema-builder/cmd"

func main() {
	cmd.Execute()
}
