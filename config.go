package workload

import (
	"time"
)

// Document keys of the canonical serialization format, and the default
// each field takes when a document leaves it out. Parsing always starts
// from these defaults; keys not listed here are ignored.
const (
	// The name of the workload scenario recorded in serialized documents.
	PropertyWorkload = "workload"
	// The default value of `PropertyWorkload`
	PropertyWorkloadDefault = "core"
	// The number of records to load into the database initially.
	PropertyRecordCount = "recordcount"
	// The default value of `PropertyRecordCount`
	PropertyRecordCountDefault int64 = 1000000
	// The target number of operations to perform.
	PropertyOperationCount = "operationcount"
	// The default value of `PropertyOperationCount`
	PropertyOperationCountDefault int64 = 3000000
	// The number of client goroutines to drive load with.
	PropertyThreadCount = "threadcount"
	// The default value of `PropertyThreadCount`
	PropertyThreadCountDefault int64 = 500
	// Indicates how many inserts to do, if less than `recordcount`.
	// Useful for partitioning the load among multiple servers, if the
	// client is the bottleneck. Additionally, workloads should support the
	// "insertstart" property, which tells them which record to start at.
	PropertyInsertCount = "insertcount"
	// The default value of `PropertyInsertCount`
	PropertyInsertCountDefault int64 = 0
	// The first record to insert when the load is partitioned.
	PropertyInsertStart = "insertstart"
	// The default value of `PropertyInsertStart`
	PropertyInsertStartDefault int64 = 0
	// The name of the property for the number of fields in a record.
	PropertyFieldCount = "fieldcount"
	// The default value of `PropertyFieldCount`.
	PropertyFieldCountDefault int64 = 10
	// The name of the property for the length of a field in bytes.
	PropertyFieldLength = "fieldlength"
	// The default value of `PropertyFieldLength`
	PropertyFieldLengthDefault int64 = 100
	// The name of the property for deciding whether to read one field
	// (false) or all fields (true) of a record.
	PropertyReadAllFields = "readallfields"
	// The default value of `PropertyReadAllFields`
	PropertyReadAllFieldsDefault = true
	// The name of the property for deciding whether to write one field
	// (false) or all fields (true) of a record.
	PropertyWriteAllFields = "writeallfields"
	// The default value of `PropertyWriteAllFields`
	PropertyWriteAllFieldsDefault = false
	// The name of the property for the field length distribution.
	PropertyFieldLengthDistribution = "fieldlengthdistribution"
	// The default value of `PropertyFieldLengthDistribution`
	PropertyFieldLengthDistributionDefault = DistributionConstant
	// The name of the property for the proportion of operations
	// that are reads.
	PropertyReadProportion = "readproportion"
	// The default value of `PropertyReadProportion`
	PropertyReadProportionDefault float64 = 0.95
	// The name of the property for the proportion of operations
	// that are updates.
	PropertyUpdateProportion = "updateproportion"
	// The default value of `PropertyUpdateProportion`
	PropertyUpdateProportionDefault float64 = 0.05
	// The name of the property for the proportion of operations
	// that are inserts.
	PropertyInsertProportion = "insertproportion"
	// The default value of `PropertyInsertProportion`
	PropertyInsertProportionDefault float64 = 0.0
	// The name of the property for the proportion of operations that
	// read a record, modify it and write it back.
	PropertyReadModifyWriteProportion = "readmodifywriteproportion"
	// The default value of `PropertyReadModifyWriteProportion`
	PropertyReadModifyWriteProportionDefault float64 = 0.0
	// The name of the property for the proportion of operations
	// that are scans.
	PropertyScanProportion = "scanproportion"
	// The default value of `PropertyScanProportion`
	PropertyScanProportionDefault float64 = 0.0
	// The name of the property for the max scan length (number of records).
	PropertyMaxScanLength = "maxscanlength"
	// The default max scan length
	PropertyMaxScanLengthDefault int64 = 1000
	// The name of the property for the scan length distribution.
	// Options are "uniform" and "zipfian" (favoring short scans).
	PropertyScanLengthDistribution = "scanlengthdistribution"
	// The default value of `PropertyScanLengthDistribution`
	PropertyScanLengthDistributionDefault = DistributionUniform
	// The name of the property for the order to insert records.
	// Options are "ordered" or "hashed".
	PropertyInsertOrder = "insertorder"
	// The default value of `PropertyInsertOrder`
	PropertyInsertOrderDefault = InsertOrderHashed
	// The name of the property for the distribution of requests across
	// the keyspace. Options are "uniform", "zipfian" and "latest".
	PropertyRequestDistribution = "requestdistribution"
	// The default value of `PropertyRequestDistribution`
	PropertyRequestDistributionDefault = DistributionZipfian
	// Percentage of data items that constitute the hot set. Documents have
	// always spelled this key "readcount"; the spelling is kept so that
	// existing files keep their meaning. The flat properties surface uses
	// `HotspotDataFractionClassic` instead.
	HotspotDataFraction = "readcount"
	// The default value of `HotspotDataFraction`
	HotspotDataFractionDefault float64 = 0.2
	// Percentage of operations that access the hot set.
	HotspotOpnFraction = "hotspotopnfraction"
	// The default value of `HotspotOpnFraction`
	HotspotOpnFractionDefault float64 = 0.8
	// The maximum amount of time for which the benchmark will be run.
	// Zero means no limit. Serialized in whole seconds.
	PropertyMaxExecutionTime = "maxexecutiontime"
	// The default value of `PropertyMaxExecutionTime`
	PropertyMaxExecutionTimeDefault time.Duration = 0
	// The name of the database table to run queries against.
	PropertyTableName = "table"
	// The default value of `PropertyTableName`
	PropertyTableNameDefault = "usertable"
	// The column family of fields, required by some databases.
	PropertyColumnFamily = "columnfamily"
	// The default value of `PropertyColumnFamily`
	PropertyColumnFamilyDefault = ""
	// The name of the property selecting how latency measurements are
	// collected. Options are "histogram", "timeseries" and "raw".
	PropertyMeasurementType = "measurementtype"
	// The default value of `PropertyMeasurementType`
	PropertyMeasurementTypeDefault = MeasurementHistogram
)

// Keys under the measurement sub-tables of canonical documents.
const (
	// Table names of the measurement sub-sections.
	TableHistogram  = "histogram"
	TableTimeSeries = "timeseries"
	// Width of a histogram bucket. Units are milliseconds.
	PropertyBuckets = "buckets"
	// The default value of `PropertyBuckets`
	PropertyBucketsDefault = 1000 * time.Millisecond
	// Granularity for time series; measurements will be averaged in chunks
	// of this granularity. Units are milliseconds.
	PropertyGranularity = "granularity"
	// The default value of `PropertyGranularity`
	PropertyGranularityDefault = 1000 * time.Millisecond
)

// Spellings that differ on the classic flat properties surface. All other
// keys are shared between the two formats.
const (
	// Percentage of data items that constitute the hot set.
	HotspotDataFractionClassic = "hotspotdatafraction"
	// Width of a histogram bucket, in milliseconds.
	PropertyBucketsClassic = "histogram.buckets"
	// Time series granularity, in milliseconds.
	PropertyGranularityClassic = "timeseries.granularity"
)
