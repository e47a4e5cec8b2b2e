// Package gen renders compiled mapping tables into source code for the
// ingest pipelines that consume them.
//
// Two formats are supported, selected once through NewFormat:
//   - js: "var ecs_mappings = {...}" objects for the JavaScript processor
//   - go: a generated Go file declaring ecsMappings and rsaMappings
//
// Each format renders one destination (RenderTarget) and one conversion
// (RenderConversion); the surrounding file is produced with text/template.
package gen
