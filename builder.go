package workload

import (
	"time"
)

// Builder assembles a Workload by applying overrides on top of the
// canonical defaults, mirroring how a sparse document is parsed. The
// zero value is not usable; obtain one from NewBuilder.
type Builder struct {
	w Workload
}

// NewBuilder returns a builder primed with DefaultWorkload.
func NewBuilder() *Builder {
	return &Builder{
		w: DefaultWorkload(),
	}
}

// Workload sets the scenario name recorded in serialized documents.
func (self *Builder) Workload(name string) *Builder {
	self.w.Workload = name
	return self
}

func (self *Builder) RecordCount(count int64) *Builder {
	self.w.RecordCount = count
	return self
}

func (self *Builder) OperationCount(count int64) *Builder {
	self.w.OperationCount = count
	return self
}

func (self *Builder) ThreadCount(count int64) *Builder {
	self.w.ThreadCount = count
	return self
}

func (self *Builder) InsertCount(count int64) *Builder {
	self.w.InsertCount = count
	return self
}

func (self *Builder) InsertStart(start int64) *Builder {
	self.w.InsertStart = start
	return self
}

func (self *Builder) FieldCount(count int64) *Builder {
	self.w.FieldCount = count
	return self
}

func (self *Builder) FieldLength(length int64) *Builder {
	self.w.FieldLength = length
	return self
}

func (self *Builder) ReadAllFields(all bool) *Builder {
	self.w.ReadAllFields = all
	return self
}

func (self *Builder) WriteAllFields(all bool) *Builder {
	self.w.WriteAllFields = all
	return self
}

func (self *Builder) FieldLengthDistribution(d Distribution) *Builder {
	self.w.FieldLengthDistribution = d
	return self
}

func (self *Builder) ReadProportion(p float64) *Builder {
	self.w.ReadProportion = p
	return self
}

func (self *Builder) UpdateProportion(p float64) *Builder {
	self.w.UpdateProportion = p
	return self
}

func (self *Builder) InsertProportion(p float64) *Builder {
	self.w.InsertProportion = p
	return self
}

func (self *Builder) ReadModifyWriteProportion(p float64) *Builder {
	self.w.ReadModifyWriteProportion = p
	return self
}

func (self *Builder) ScanProportion(p float64) *Builder {
	self.w.ScanProportion = p
	return self
}

func (self *Builder) MaxScanLength(length int64) *Builder {
	self.w.MaxScanLength = length
	return self
}

func (self *Builder) ScanLengthDistribution(d Distribution) *Builder {
	self.w.ScanLengthDistribution = d
	return self
}

func (self *Builder) InsertOrder(order InsertOrder) *Builder {
	self.w.InsertOrder = order
	return self
}

func (self *Builder) RequestDistribution(d Distribution) *Builder {
	self.w.RequestDistribution = d
	return self
}

func (self *Builder) HotspotDataFraction(fraction float64) *Builder {
	self.w.HotspotDataFraction = fraction
	return self
}

func (self *Builder) HotspotOperationFraction(fraction float64) *Builder {
	self.w.HotspotOperationFraction = fraction
	return self
}

// MaxExecutionTime sets the run time limit. It is serialized in whole
// seconds; zero means no limit.
func (self *Builder) MaxExecutionTime(limit time.Duration) *Builder {
	self.w.MaxExecutionTime = limit
	return self
}

func (self *Builder) Table(name string) *Builder {
	self.w.Table = name
	return self
}

func (self *Builder) ColumnFamily(name string) *Builder {
	self.w.ColumnFamily = name
	return self
}

func (self *Builder) MeasurementType(t MeasurementType) *Builder {
	self.w.MeasurementType = t
	return self
}

// HistogramBuckets sets the histogram bucket width. It is serialized in
// whole milliseconds.
func (self *Builder) HistogramBuckets(width time.Duration) *Builder {
	self.w.Histogram.Buckets = width
	return self
}

// TimeSeriesGranularity sets the timeseries averaging window. It is
// serialized in whole milliseconds.
func (self *Builder) TimeSeriesGranularity(granularity time.Duration) *Builder {
	self.w.TimeSeries.Granularity = granularity
	return self
}

// Build returns the assembled value. Build never fails and never
// validates; call Validate on the result when advisory checking is
// wanted.
func (self *Builder) Build() Workload {
	return self.w
}
