// Package workload models the configuration of a YCSB-style key-value
// benchmark scenario: the relative proportion of different kinds of
// operations, the record layout, how keys are chosen, and how latency
// measurements are kept. It carries no benchmark engine; values of this
// package describe a run for whatever engine consumes them.
//
// Configurations are exchanged as canonical text documents. Parse and
// Marshal round-trip exactly, and a document only needs to mention the
// fields it wants to override; everything else keeps its default.
package workload

import (
	"fmt"
	"math"
	"time"

	"github.com/hashicorp/go-multierror"
)

// Proportions may drift from an exact sum of 1 by this much before
// Validate complains.
const proportionSumTolerance = 1e-6

// HistogramConfig holds the settings of the histogram measurement type.
type HistogramConfig struct {
	// Width of one histogram bucket. Serialized in whole milliseconds.
	Buckets time.Duration
}

// TimeSeriesConfig holds the settings of the timeseries measurement type.
type TimeSeriesConfig struct {
	// Measurements are averaged in chunks of this granularity.
	// Serialized in whole milliseconds.
	Granularity time.Duration
}

// Workload is the complete configuration of one benchmark scenario.
// It is a plain value: assignment copies the configuration, and two
// values can be compared with ==. The zero value is not a usable
// configuration; start from DefaultWorkload, a preset, or one of the
// parse functions, and adjust fields directly or through a Builder.
type Workload struct {
	// The name of the workload scenario, recorded in serialized documents.
	Workload string
	// The number of records to load into the database initially.
	RecordCount int64
	// The target number of operations to perform.
	OperationCount int64
	// The number of client goroutines to drive load with.
	ThreadCount int64
	// How many inserts to do, if less than RecordCount. Useful for
	// partitioning the load among multiple servers.
	InsertCount int64
	// The first record to insert when the load is partitioned.
	InsertStart int64
	// The number of fields in a record.
	FieldCount int64
	// The length of a field in bytes.
	FieldLength int64
	// Should reads read all fields (true) or just one (false).
	ReadAllFields bool
	// Should updates and read/modify/writes write all fields (true) or
	// just one (false).
	WriteAllFields bool
	// The distribution field lengths are drawn from.
	FieldLengthDistribution Distribution
	// What proportion of operations are reads.
	ReadProportion float64
	// What proportion of operations are updates.
	UpdateProportion float64
	// What proportion of operations are inserts.
	InsertProportion float64
	// What proportion of operations read a record, modify it and write
	// it back.
	ReadModifyWriteProportion float64
	// What proportion of operations are scans.
	ScanProportion float64
	// For scans, the maximum number of records to scan.
	MaxScanLength int64
	// For scans, the distribution the scan length is drawn from, between
	// 1 and MaxScanLength.
	ScanLengthDistribution Distribution
	// Should records be inserted in order by key, or in hashed order.
	InsertOrder InsertOrder
	// The distribution of requests across the keyspace.
	RequestDistribution Distribution
	// Percentage of data items that constitute the hot set.
	HotspotDataFraction float64
	// Percentage of operations that access the hot set.
	HotspotOperationFraction float64
	// The maximum amount of time for which the benchmark will be run.
	// Zero means no limit. Serialized in whole seconds.
	MaxExecutionTime time.Duration
	// The name of the database table to run queries against.
	Table string
	// The column family of fields, required by some databases.
	ColumnFamily string
	// How latency measurements are collected and presented.
	MeasurementType MeasurementType
	// Settings of the histogram measurement type.
	Histogram HistogramConfig
	// Settings of the timeseries measurement type.
	TimeSeries TimeSeriesConfig
}

// DefaultWorkload returns the canonical core configuration, the exact
// values every parse starts from. Two calls always return identical
// values.
func DefaultWorkload() Workload {
	return Workload{
		Workload:                  PropertyWorkloadDefault,
		RecordCount:               PropertyRecordCountDefault,
		OperationCount:            PropertyOperationCountDefault,
		ThreadCount:               PropertyThreadCountDefault,
		InsertCount:               PropertyInsertCountDefault,
		InsertStart:               PropertyInsertStartDefault,
		FieldCount:                PropertyFieldCountDefault,
		FieldLength:               PropertyFieldLengthDefault,
		ReadAllFields:             PropertyReadAllFieldsDefault,
		WriteAllFields:            PropertyWriteAllFieldsDefault,
		FieldLengthDistribution:   PropertyFieldLengthDistributionDefault,
		ReadProportion:            PropertyReadProportionDefault,
		UpdateProportion:          PropertyUpdateProportionDefault,
		InsertProportion:          PropertyInsertProportionDefault,
		ReadModifyWriteProportion: PropertyReadModifyWriteProportionDefault,
		ScanProportion:            PropertyScanProportionDefault,
		MaxScanLength:             PropertyMaxScanLengthDefault,
		ScanLengthDistribution:    PropertyScanLengthDistributionDefault,
		InsertOrder:               PropertyInsertOrderDefault,
		RequestDistribution:       PropertyRequestDistributionDefault,
		HotspotDataFraction:       HotspotDataFractionDefault,
		HotspotOperationFraction:  HotspotOpnFractionDefault,
		MaxExecutionTime:          PropertyMaxExecutionTimeDefault,
		Table:                     PropertyTableNameDefault,
		ColumnFamily:              PropertyColumnFamilyDefault,
		MeasurementType:           PropertyMeasurementTypeDefault,
		Histogram:                 HistogramConfig{Buckets: PropertyBucketsDefault},
		TimeSeries:                TimeSeriesConfig{Granularity: PropertyGranularityDefault},
	}
}

// Validate reports conditions a benchmark engine would reject or silently
// misbehave on: proportions outside [0, 1] or not summing to 1, hotspot
// fractions outside [0, 1], negative counts or durations, and
// distributions applied to a purpose they cannot serve.
//
// Validation is advisory. Nothing in this package calls it, and a value
// that fails validation still serializes and reloads losslessly. All
// violations found are reported together; a nil return means none.
func (self Workload) Validate() error {
	var result *multierror.Error

	proportions := []struct {
		name  string
		value float64
	}{
		{PropertyReadProportion, self.ReadProportion},
		{PropertyUpdateProportion, self.UpdateProportion},
		{PropertyInsertProportion, self.InsertProportion},
		{PropertyReadModifyWriteProportion, self.ReadModifyWriteProportion},
		{PropertyScanProportion, self.ScanProportion},
	}
	sum := float64(0)
	for _, p := range proportions {
		if math.IsNaN(p.value) || p.value < 0 || p.value > 1 {
			result = multierror.Append(result, fmt.Errorf(
				"%s is %v, must be in [0, 1]", p.name, p.value))
		}
		sum += p.value
	}
	// written so that a NaN sum also fails
	if !(math.Abs(sum-1) <= proportionSumTolerance) {
		result = multierror.Append(result, fmt.Errorf(
			"operation proportions sum to %v, must sum to 1", sum))
	}

	fractions := []struct {
		name  string
		value float64
	}{
		{"hotspot data fraction", self.HotspotDataFraction},
		{"hotspot operation fraction", self.HotspotOperationFraction},
	}
	for _, f := range fractions {
		if math.IsNaN(f.value) || f.value < 0 || f.value > 1 {
			result = multierror.Append(result, fmt.Errorf(
				"%s is %v, must be in [0, 1]", f.name, f.value))
		}
	}

	counts := []struct {
		name  string
		value int64
	}{
		{PropertyRecordCount, self.RecordCount},
		{PropertyOperationCount, self.OperationCount},
		{PropertyThreadCount, self.ThreadCount},
		{PropertyInsertCount, self.InsertCount},
		{PropertyInsertStart, self.InsertStart},
		{PropertyFieldCount, self.FieldCount},
		{PropertyFieldLength, self.FieldLength},
		{PropertyMaxScanLength, self.MaxScanLength},
	}
	for _, c := range counts {
		if c.value < 0 {
			result = multierror.Append(result, fmt.Errorf(
				"%s is %d, must not be negative", c.name, c.value))
		}
	}

	durations := []struct {
		name  string
		value time.Duration
	}{
		{PropertyMaxExecutionTime, self.MaxExecutionTime},
		{PropertyBucketsClassic, self.Histogram.Buckets},
		{PropertyGranularityClassic, self.TimeSeries.Granularity},
	}
	for _, d := range durations {
		if d.value < 0 {
			result = multierror.Append(result, fmt.Errorf(
				"%s is %v, must not be negative", d.name, d.value))
		}
	}

	if !self.FieldLengthDistribution.valid() {
		result = multierror.Append(result, fmt.Errorf(
			"no known distribution set for %s", PropertyFieldLengthDistribution))
	} else if self.FieldLengthDistribution == DistributionLatest {
		result = multierror.Append(result, fmt.Errorf(
			"distribution %q not allowed for field length", self.FieldLengthDistribution))
	}
	if !self.ScanLengthDistribution.valid() {
		result = multierror.Append(result, fmt.Errorf(
			"no known distribution set for %s", PropertyScanLengthDistribution))
	} else if self.ScanLengthDistribution == DistributionConstant ||
		self.ScanLengthDistribution == DistributionLatest {
		result = multierror.Append(result, fmt.Errorf(
			"distribution %q not allowed for scan length", self.ScanLengthDistribution))
	}
	if !self.RequestDistribution.valid() {
		result = multierror.Append(result, fmt.Errorf(
			"no known distribution set for %s", PropertyRequestDistribution))
	} else if self.RequestDistribution == DistributionConstant {
		result = multierror.Append(result, fmt.Errorf(
			"distribution %q not allowed for request choice", self.RequestDistribution))
	}
	if !self.InsertOrder.valid() {
		result = multierror.Append(result, fmt.Errorf(
			"no known insert order set for %s", PropertyInsertOrder))
	}
	if !self.MeasurementType.valid() {
		result = multierror.Append(result, fmt.Errorf(
			"no known measurement type set for %s", PropertyMeasurementType))
	}

	return result.ErrorOrNil()
}
