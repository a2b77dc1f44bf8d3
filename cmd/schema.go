package cmd

import (
	"errors"
	"fmt"
	log2 "log"
	"net/http"
	"os"
	"strings"

	"github.com/datastax/cassandra-schema-builder/config"
	"github.com/datastax/cassandra-schema-builder/db"
	"github.com/datastax/cassandra-schema-builder/diagnostics"
	"github.com/datastax/cassandra-schema-builder/log"
	"github.com/datastax/cassandra-schema-builder/schemabuilder"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// Environment variables prefixed with "SCHEMA_BUILDER_" can override settings e.g. "SCHEMA_BUILDER_HOSTS"
const envVarPrefix = "schema_builder"

var cfgFile string
var logger log.Logger

var schemaCmd = &cobra.Command{
	Use:   os.Args[0] + " --schema-file [FILE] [--hosts [HOSTS]|--dry-run] [OPTIONS]",
	Short: "Applies a schema definition file to an Apache Cassandra cluster",
	Args: func(cmd *cobra.Command, args []string) error {
		if viper.GetString("schema-file") == "" {
			return errors.New("a schema file is required")
		}
		if len(getStringSlice("hosts")) == 0 && !viper.GetBool("dry-run") {
			return errors.New("hosts are required unless running with --dry-run")
		}
		return nil
	},
	Run: func(cmd *cobra.Command, args []string) {
		definition := loadDefinition()
		statements := definition.ToStatements(namingConvention())

		if viper.GetBool("dry-run") {
			printStatements(statements)
			return
		}

		applyStatements(definition.Keyspace, statements)
	},
}

// Execute applies the schema definition
func Execute() {
	zapLogger, err := zap.NewProduction()
	if err != nil {
		log2.Fatalf("unable to initialize logger: %v", err)
	}

	logger = log.NewZapLogger(zapLogger)

	flags := schemaCmd.PersistentFlags()

	flags.StringVarP(&cfgFile, "config", "c", "", "config file")
	flags.StringSliceP("hosts", "t", nil, "hosts for connecting to the database")
	flags.StringP("schema-file", "f", "", "schema definition file (YAML or JSON)")
	flags.String("keyspace", "", "override the keyspace named in the schema file")
	flags.Bool("dry-run", false, "print the generated statements without executing them")
	flags.Bool("verbatim-names", false, "keep identifiers as written instead of converting to snake_case")
	flags.Int("diagnostics-port", 0, "expose the diagnostics endpoints on this port while applying")

	flags.VisitAll(func(flag *pflag.Flag) {
		if flag.Name != "config" {
			viper.BindPFlag(flag.Name, flags.Lookup(flag.Name))
		}
	})

	cobra.OnInitialize(initialize)

	viper.SetEnvPrefix(envVarPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := schemaCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

func initialize() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
		if err := viper.ReadInConfig(); err == nil {
			logger.Info("using config file",
				"file", viper.ConfigFileUsed())
		}
	}
}

func loadDefinition() *config.SchemaDefinition {
	schemaFile := viper.GetString("schema-file")
	definition, err := config.LoadSchemaFile(schemaFile)
	if err != nil {
		logger.Fatal("unable to load schema file",
			"file", schemaFile,
			"error", err)
	}

	if keyspace := viper.GetString("keyspace"); keyspace != "" {
		definition.Keyspace = keyspace
	}
	return definition
}

func namingConvention() config.NamingConvention {
	if viper.GetBool("verbatim-names") {
		return config.NewVerbatimNaming()
	}
	return config.NewSnakeCaseNaming()
}

func printStatements(statements []schemabuilder.SchemaStatement) {
	for _, statement := range statements {
		query, err := statement.Build()
		if err != nil {
			logger.Fatal("invalid schema definition",
				"error", err)
		}
		fmt.Printf("%s;\n", query)
	}
}

func applyStatements(keyspace string, statements []schemabuilder.SchemaStatement) {
	hosts := getStringSlice("hosts")
	dbClient, err := db.NewDb(hosts...)
	if err != nil {
		logger.Fatal("unable to connect to cluster",
			"hosts", hosts,
			"error", err)
	}
	defer dbClient.Close()

	diagnosticsPort := viper.GetInt("diagnostics-port")
	if diagnosticsPort > 0 {
		router := diagnostics.Router(diagnostics.New(dbClient, hosts, keyspace))
		go listenAndServe(router, diagnosticsPort)
	}

	options := db.NewQueryOptions()
	for _, statement := range statements {
		query, err := dbClient.ExecuteStatement(statement, options)
		if err != nil {
			logger.Fatal("unable to apply schema statement",
				"error", err)
		}
		logger.Info("applied schema statement",
			"cql", query)
	}

	logger.Info("schema applied",
		"keyspace", keyspace,
		"statements", len(statements))
}

func listenAndServe(handler http.Handler, port int) {
	logger.Info("diagnostics server listening",
		"port", port)
	if err := http.ListenAndServe(fmt.Sprintf(":%d", port), handler); err != nil {
		logger.Error("unable to start diagnostics server",
			"port", port,
			"error", err)
	}
}

// getStringSlice allows comma separated values in environment variables the
// same way the flag accepts them.
func getStringSlice(key string) []string {
	value := viper.GetStringSlice(key)
	if len(value) == 1 && strings.Contains(value[0], ",") {
		value = strings.Split(value[0], ",")
	}
	return value
}
