// Package schema builds the schema-definition files describing every
// destination field of a mapping spreadsheet.
//
// RSA destinations are collected into fields.yml with the storage type
// derived from their declared type and the row description. ECS
// destinations are copied from a reference ECS definition (fields.ecs.yml)
// into ecs.yml. Both files are written as nested group trees.
package schema
