// Package model defines the data shared by the extraction and aggregation
// stages: the canonical Record, the Summary written at the end of a run,
// and the Run that carries state between pipeline steps.
package model
