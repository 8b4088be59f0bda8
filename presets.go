package workload

// The classic core workload mixes A through F. Each preset applies its
// operation mix and key distribution on top of the defaults, sized by
// the caller; everything the preset does not touch keeps its default
// value, so a preset serializes to a small readable document.

// PresetA returns workload A: update heavy, a 50/50 mix of reads and
// updates, keys chosen uniformly.
func PresetA(recordCount, operationCount int64) Workload {
	return NewBuilder().
		RecordCount(recordCount).
		OperationCount(operationCount).
		ReadAllFields(true).
		InsertProportion(0).
		ReadProportion(0.5).
		ScanProportion(0).
		UpdateProportion(0.5).
		RequestDistribution(DistributionUniform).
		Build()
}

// PresetB returns workload B: read mostly, a 95/5 mix of reads and
// updates, keys chosen uniformly.
func PresetB(recordCount, operationCount int64) Workload {
	return NewBuilder().
		RecordCount(recordCount).
		OperationCount(operationCount).
		ReadAllFields(true).
		InsertProportion(0).
		ReadProportion(0.95).
		ScanProportion(0).
		UpdateProportion(0.05).
		RequestDistribution(DistributionUniform).
		Build()
}

// PresetC returns workload C: read only, keys chosen uniformly.
func PresetC(recordCount, operationCount int64) Workload {
	return NewBuilder().
		RecordCount(recordCount).
		OperationCount(operationCount).
		ReadAllFields(true).
		InsertProportion(0).
		ReadProportion(1).
		ScanProportion(0).
		UpdateProportion(0).
		RequestDistribution(DistributionUniform).
		Build()
}

// PresetD returns workload D: read latest, inserts mixed with reads that
// favor the most recently inserted records.
func PresetD(recordCount, operationCount int64) Workload {
	return NewBuilder().
		RecordCount(recordCount).
		OperationCount(operationCount).
		ReadAllFields(true).
		InsertProportion(0.05).
		ReadProportion(0.95).
		ScanProportion(0).
		UpdateProportion(0).
		RequestDistribution(DistributionLatest).
		Build()
}

// PresetE returns workload E: short ranges, scans of single-record
// length mixed with inserts, keys chosen uniformly.
func PresetE(recordCount, operationCount int64) Workload {
	return NewBuilder().
		RecordCount(recordCount).
		OperationCount(operationCount).
		ReadAllFields(true).
		InsertProportion(0.05).
		ReadProportion(0).
		ScanProportion(0.95).
		UpdateProportion(0).
		RequestDistribution(DistributionUniform).
		MaxScanLength(1).
		ScanLengthDistribution(DistributionUniform).
		Build()
}

// PresetF returns workload F: read-modify-write, records are read,
// modified and written back, mixed 50/50 with plain reads, keys chosen
// uniformly.
func PresetF(recordCount, operationCount int64) Workload {
	return NewBuilder().
		RecordCount(recordCount).
		OperationCount(operationCount).
		ReadAllFields(true).
		InsertProportion(0).
		ReadModifyWriteProportion(0.5).
		ReadProportion(0.5).
		ScanProportion(0).
		UpdateProportion(0).
		RequestDistribution(DistributionUniform).
		Build()
}
