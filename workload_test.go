package workload

import (
	"github.com/hashicorp/go-multierror"
	"github.com/hhkbp2/testify/require"
	"testing"
	"time"
)

func TestDefaultWorkload(t *testing.T) {
	w := DefaultWorkload()
	require.Equal(t, "core", w.Workload)
	require.Equal(t, int64(1000000), w.RecordCount)
	require.Equal(t, int64(3000000), w.OperationCount)
	require.Equal(t, int64(500), w.ThreadCount)
	require.Equal(t, int64(0), w.InsertCount)
	require.Equal(t, int64(0), w.InsertStart)
	require.Equal(t, int64(10), w.FieldCount)
	require.Equal(t, int64(100), w.FieldLength)
	require.True(t, w.ReadAllFields)
	require.False(t, w.WriteAllFields)
	require.Equal(t, DistributionConstant, w.FieldLengthDistribution)
	require.Equal(t, 0.95, w.ReadProportion)
	require.Equal(t, 0.05, w.UpdateProportion)
	require.Equal(t, 0.0, w.InsertProportion)
	require.Equal(t, 0.0, w.ReadModifyWriteProportion)
	require.Equal(t, 0.0, w.ScanProportion)
	require.Equal(t, int64(1000), w.MaxScanLength)
	require.Equal(t, DistributionUniform, w.ScanLengthDistribution)
	require.Equal(t, InsertOrderHashed, w.InsertOrder)
	require.Equal(t, DistributionZipfian, w.RequestDistribution)
	require.Equal(t, 0.2, w.HotspotDataFraction)
	require.Equal(t, 0.8, w.HotspotOperationFraction)
	require.Equal(t, time.Duration(0), w.MaxExecutionTime)
	require.Equal(t, "usertable", w.Table)
	require.Equal(t, "", w.ColumnFamily)
	require.Equal(t, MeasurementHistogram, w.MeasurementType)
	require.Equal(t, time.Second, w.Histogram.Buckets)
	require.Equal(t, time.Second, w.TimeSeries.Granularity)
}

func TestDefaultWorkloadIsReproducible(t *testing.T) {
	require.Equal(t, DefaultWorkload(), DefaultWorkload())
}

func TestDefaultWorkloadIsValid(t *testing.T) {
	require.Nil(t, DefaultWorkload().Validate())
}

func violations(t *testing.T, w Workload) []error {
	err := w.Validate()
	require.NotNil(t, err)
	merr, ok := err.(*multierror.Error)
	require.True(t, ok)
	return merr.Errors
}

func TestValidateProportionRange(t *testing.T) {
	w := DefaultWorkload()
	w.ReadProportion = 1.5
	// out of range, and the mix no longer sums to 1
	require.Equal(t, 2, len(violations(t, w)))
}

func TestValidateProportionSum(t *testing.T) {
	w := DefaultWorkload()
	w.ReadProportion = 0.5
	w.UpdateProportion = 0.1
	require.Equal(t, 1, len(violations(t, w)))

	// drift below the tolerance passes
	w = DefaultWorkload()
	w.ReadProportion = 0.95 + 1e-9
	require.Nil(t, w.Validate())
}

func TestValidateHotspotFractions(t *testing.T) {
	w := DefaultWorkload()
	w.HotspotDataFraction = 1.2
	require.Equal(t, 1, len(violations(t, w)))

	w = DefaultWorkload()
	w.HotspotOperationFraction = -0.1
	require.Equal(t, 1, len(violations(t, w)))
}

func TestValidateNegativeCounts(t *testing.T) {
	w := DefaultWorkload()
	w.RecordCount = -5
	require.Equal(t, 1, len(violations(t, w)))

	w = DefaultWorkload()
	w.MaxExecutionTime = -time.Second
	require.Equal(t, 1, len(violations(t, w)))
}

func TestValidateDistributionPurpose(t *testing.T) {
	w := DefaultWorkload()
	w.FieldLengthDistribution = DistributionLatest
	require.Equal(t, 1, len(violations(t, w)))

	w = DefaultWorkload()
	w.ScanLengthDistribution = DistributionConstant
	require.Equal(t, 1, len(violations(t, w)))

	w = DefaultWorkload()
	w.ScanLengthDistribution = DistributionLatest
	require.Equal(t, 1, len(violations(t, w)))

	w = DefaultWorkload()
	w.RequestDistribution = DistributionConstant
	require.Equal(t, 1, len(violations(t, w)))

	// latest is fine for request choice
	w = DefaultWorkload()
	w.RequestDistribution = DistributionLatest
	require.Nil(t, w.Validate())
}

func TestValidateReportsAllViolations(t *testing.T) {
	w := DefaultWorkload()
	w.ReadProportion = -1
	w.HotspotDataFraction = 2
	w.RequestDistribution = DistributionConstant
	// range, sum, fraction and purpose violations together
	require.Equal(t, 4, len(violations(t, w)))
}

func TestValidateZeroValue(t *testing.T) {
	require.NotNil(t, Workload{}.Validate())
}

func TestValidateDoesNotBlockSerialization(t *testing.T) {
	w := DefaultWorkload()
	w.ReadProportion = 42.0
	require.NotNil(t, w.Validate())
	text, err := w.Marshal()
	require.Nil(t, err)
	reparsed, err := Parse(text)
	require.Nil(t, err)
	require.Equal(t, w, reparsed)
}
