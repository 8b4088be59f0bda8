package workload

import (
	"github.com/hhkbp2/testify/require"
	"testing"
	"time"
)

func TestBuilderDefaults(t *testing.T) {
	require.Equal(t, DefaultWorkload(), NewBuilder().Build())
}

func TestBuilderOverrides(t *testing.T) {
	w := NewBuilder().
		Workload("soak").
		RecordCount(123).
		OperationCount(456).
		ThreadCount(8).
		FieldCount(5).
		FieldLength(64).
		ReadAllFields(false).
		WriteAllFields(true).
		FieldLengthDistribution(DistributionUniform).
		ReadProportion(0.25).
		UpdateProportion(0.25).
		InsertProportion(0.25).
		ReadModifyWriteProportion(0.15).
		ScanProportion(0.1).
		MaxScanLength(50).
		ScanLengthDistribution(DistributionZipfian).
		InsertOrder(InsertOrderOrdered).
		RequestDistribution(DistributionLatest).
		HotspotDataFraction(0.3).
		HotspotOperationFraction(0.7).
		MaxExecutionTime(2 * time.Minute).
		Table("loadtest").
		ColumnFamily("cf0").
		MeasurementType(MeasurementRaw).
		HistogramBuckets(250 * time.Millisecond).
		TimeSeriesGranularity(5 * time.Second).
		Build()

	require.Equal(t, "soak", w.Workload)
	require.Equal(t, int64(123), w.RecordCount)
	require.Equal(t, int64(456), w.OperationCount)
	require.Equal(t, int64(8), w.ThreadCount)
	require.Equal(t, int64(5), w.FieldCount)
	require.Equal(t, int64(64), w.FieldLength)
	require.False(t, w.ReadAllFields)
	require.True(t, w.WriteAllFields)
	require.Equal(t, DistributionUniform, w.FieldLengthDistribution)
	require.Equal(t, 0.25, w.ReadProportion)
	require.Equal(t, 0.25, w.UpdateProportion)
	require.Equal(t, 0.25, w.InsertProportion)
	require.Equal(t, 0.15, w.ReadModifyWriteProportion)
	require.Equal(t, 0.1, w.ScanProportion)
	require.Equal(t, int64(50), w.MaxScanLength)
	require.Equal(t, DistributionZipfian, w.ScanLengthDistribution)
	require.Equal(t, InsertOrderOrdered, w.InsertOrder)
	require.Equal(t, DistributionLatest, w.RequestDistribution)
	require.Equal(t, 0.3, w.HotspotDataFraction)
	require.Equal(t, 0.7, w.HotspotOperationFraction)
	require.Equal(t, 2*time.Minute, w.MaxExecutionTime)
	require.Equal(t, "loadtest", w.Table)
	require.Equal(t, "cf0", w.ColumnFamily)
	require.Equal(t, MeasurementRaw, w.MeasurementType)
	require.Equal(t, 250*time.Millisecond, w.Histogram.Buckets)
	require.Equal(t, 5*time.Second, w.TimeSeries.Granularity)

	// untouched fields keep their defaults
	require.Equal(t, int64(0), w.InsertCount)
	require.Equal(t, int64(0), w.InsertStart)
	require.Nil(t, w.Validate())
}

func TestBuilderDoesNotValidate(t *testing.T) {
	w := NewBuilder().ReadProportion(2.5).RecordCount(-1).Build()
	require.Equal(t, 2.5, w.ReadProportion)
	require.Equal(t, int64(-1), w.RecordCount)
	require.NotNil(t, w.Validate())
}

func TestBuilderIndependence(t *testing.T) {
	a := NewBuilder().RecordCount(1)
	b := NewBuilder().RecordCount(2)
	require.Equal(t, int64(1), a.Build().RecordCount)
	require.Equal(t, int64(2), b.Build().RecordCount)

	// Build returns a copy; later setter calls do not affect it
	built := a.Build()
	a.RecordCount(99)
	require.Equal(t, int64(1), built.RecordCount)
}
