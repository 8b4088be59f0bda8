package workload

import (
	"math"
	"os"
	"strconv"
	"time"

	"github.com/magiconair/properties"
	"github.com/pkg/errors"
)

// ParseProperties builds a Workload from text in the classic flat
// key=value format of YCSB workload files. The same merge-onto-defaults
// rules apply as for Parse: only keys present in the text override
// defaults, and keys this package does not know are ignored, so files
// written for other tool chains load cleanly. Three keys are spelled
// differently on this surface: hotspotdatafraction, histogram.buckets
// and timeseries.granularity.
func ParseProperties(text string) (Workload, error) {
	p, err := properties.Load([]byte(text), properties.UTF8)
	if err != nil {
		return Workload{}, &SyntaxError{Err: err}
	}
	return fromProperties(p)
}

// LoadProperties reads a classic properties workload file. Errors
// opening or reading the file are returned wrapped; the text itself is
// handled exactly as by ParseProperties.
func LoadProperties(path string) (Workload, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Workload{}, errors.Wrapf(err, "read workload file %s", path)
	}
	return ParseProperties(string(data))
}

func fromProperties(p *properties.Properties) (Workload, error) {
	w := DefaultWorkload()
	if v, ok := p.Get(PropertyWorkload); ok {
		w.Workload = v
	}
	if err := propCount(p, PropertyRecordCount, &w.RecordCount); err != nil {
		return Workload{}, err
	}
	if err := propCount(p, PropertyOperationCount, &w.OperationCount); err != nil {
		return Workload{}, err
	}
	if err := propCount(p, PropertyThreadCount, &w.ThreadCount); err != nil {
		return Workload{}, err
	}
	if err := propCount(p, PropertyInsertCount, &w.InsertCount); err != nil {
		return Workload{}, err
	}
	if err := propCount(p, PropertyInsertStart, &w.InsertStart); err != nil {
		return Workload{}, err
	}
	if err := propCount(p, PropertyFieldCount, &w.FieldCount); err != nil {
		return Workload{}, err
	}
	if err := propCount(p, PropertyFieldLength, &w.FieldLength); err != nil {
		return Workload{}, err
	}
	if err := propBool(p, PropertyReadAllFields, &w.ReadAllFields); err != nil {
		return Workload{}, err
	}
	if err := propBool(p, PropertyWriteAllFields, &w.WriteAllFields); err != nil {
		return Workload{}, err
	}
	if err := propDistribution(p, PropertyFieldLengthDistribution, &w.FieldLengthDistribution); err != nil {
		return Workload{}, err
	}
	if err := propFraction(p, PropertyReadProportion, &w.ReadProportion); err != nil {
		return Workload{}, err
	}
	if err := propFraction(p, PropertyUpdateProportion, &w.UpdateProportion); err != nil {
		return Workload{}, err
	}
	if err := propFraction(p, PropertyInsertProportion, &w.InsertProportion); err != nil {
		return Workload{}, err
	}
	if err := propFraction(p, PropertyReadModifyWriteProportion, &w.ReadModifyWriteProportion); err != nil {
		return Workload{}, err
	}
	if err := propFraction(p, PropertyScanProportion, &w.ScanProportion); err != nil {
		return Workload{}, err
	}
	if err := propCount(p, PropertyMaxScanLength, &w.MaxScanLength); err != nil {
		return Workload{}, err
	}
	if err := propDistribution(p, PropertyScanLengthDistribution, &w.ScanLengthDistribution); err != nil {
		return Workload{}, err
	}
	if err := propInsertOrder(p, PropertyInsertOrder, &w.InsertOrder); err != nil {
		return Workload{}, err
	}
	if err := propDistribution(p, PropertyRequestDistribution, &w.RequestDistribution); err != nil {
		return Workload{}, err
	}
	if err := propFraction(p, HotspotDataFractionClassic, &w.HotspotDataFraction); err != nil {
		return Workload{}, err
	}
	if err := propFraction(p, HotspotOpnFraction, &w.HotspotOperationFraction); err != nil {
		return Workload{}, err
	}
	if err := propDuration(p, PropertyMaxExecutionTime, time.Second, &w.MaxExecutionTime); err != nil {
		return Workload{}, err
	}
	if v, ok := p.Get(PropertyTableName); ok {
		w.Table = v
	}
	if v, ok := p.Get(PropertyColumnFamily); ok {
		w.ColumnFamily = v
	}
	if err := propMeasurementType(p, PropertyMeasurementType, &w.MeasurementType); err != nil {
		return Workload{}, err
	}
	if err := propDuration(p, PropertyBucketsClassic, time.Millisecond, &w.Histogram.Buckets); err != nil {
		return Workload{}, err
	}
	if err := propDuration(p, PropertyGranularityClassic, time.Millisecond, &w.TimeSeries.Granularity); err != nil {
		return Workload{}, err
	}
	return w, nil
}

func propCount(p *properties.Properties, key string, dst *int64) error {
	s, ok := p.Get(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	if v < 0 {
		return &FieldTypeError{Key: key, Err: ErrNegativeValue}
	}
	*dst = v
	return nil
}

func propBool(p *properties.Properties, key string, dst *bool) error {
	s, ok := p.Get(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	*dst = v
	return nil
}

func propFraction(p *properties.Properties, key string, dst *float64) error {
	s, ok := p.Get(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	*dst = v
	return nil
}

func propDuration(p *properties.Properties, key string, unit time.Duration, dst *time.Duration) error {
	s, ok := p.Get(key)
	if !ok {
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return &FieldTypeError{Key: key, Err: err}
	}
	if v < 0 {
		return &FieldTypeError{Key: key, Err: ErrNegativeValue}
	}
	// the unit multiplication must not wrap around
	if v > math.MaxInt64/int64(unit) {
		return &FieldTypeError{Key: key, Err: ErrDurationTooLarge}
	}
	*dst = time.Duration(v) * unit
	return nil
}

func propDistribution(p *properties.Properties, key string, dst *Distribution) error {
	s, ok := p.Get(key)
	if !ok {
		return nil
	}
	d, err := ParseDistribution(s)
	if err != nil {
		if uv, ok := err.(*UnknownVariantError); ok {
			uv.Key = key
		}
		return err
	}
	*dst = d
	return nil
}

func propInsertOrder(p *properties.Properties, key string, dst *InsertOrder) error {
	s, ok := p.Get(key)
	if !ok {
		return nil
	}
	order, err := ParseInsertOrder(s)
	if err != nil {
		if uv, ok := err.(*UnknownVariantError); ok {
			uv.Key = key
		}
		return err
	}
	*dst = order
	return nil
}

func propMeasurementType(p *properties.Properties, key string, dst *MeasurementType) error {
	s, ok := p.Get(key)
	if !ok {
		return nil
	}
	mt, err := ParseMeasurementType(s)
	if err != nil {
		if uv, ok := err.(*UnknownVariantError); ok {
			uv.Key = key
		}
		return err
	}
	*dst = mt
	return nil
}
