package table

// Built-in sample tables. The seed command writes these to the configured
// input paths, and self-tests use them as in-memory fallbacks.

// SampleNumeric returns a small numeric inventory table.
func SampleNumeric() *Table {
	t := New("ProductID", "Stock", "Price", "ReorderLevel")
	for _, row := range [][]string{
		{"101", "5", "12.50", "8"},
		{"102", "42", "7.99", "15"},
		{"103", "18", "23.10", "20"},
		{"104", "0", "4.25", "10"},
		{"105", "67", "15.00", "25"},
		{"106", "33", "9.80", "12"},
		{"107", "12", "31.45", "18"},
		{"108", "55", "6.40", "30"},
		{"109", "21", "18.75", "14"},
		{"110", "80", "11.20", "35"},
	} {
		t.AppendRow(row...)
	}
	return t
}

// SampleCategorical returns the descriptive table keyed by the same ProductIDs.
func SampleCategorical() *Table {
	t := New("ProductID", "ProductName", "Category", "HazardClass", "Supplier")
	for _, row := range [][]string{
		{"101", "Paper Towels", "Cleaning Supplies", "A", "Supplier X"},
		{"102", "Cooking Oil", "Kitchen Supplies", "B", "Supplier Y"},
		{"103", "Laptop", "Office Supplies", "C", "Supplier Z"},
		{"104", "Magnesium Strips", "Lab Supplies", "D", "Supplier A"},
		{"105", "Bleach", "Cleaning Supplies", "A", "Supplier X"},
		{"106", "Mixing Bowl", "Kitchen Supplies", "C", "Supplier Y"},
		{"107", "Monitor", "Office Supplies", "C", "Supplier Z"},
		{"108", "Acetone", "Lab Supplies", "B", "Supplier A"},
		{"109", "Sponges", "Cleaning Supplies", "A", "Supplier X"},
		{"110", "Chef Knife", "Kitchen Supplies", "B", "Supplier Y"},
	} {
		t.AppendRow(row...)
	}
	return t
}

// SampleDataset returns the small vector-analytics table stored as the
// serialized dataset file.
func SampleDataset() *Table {
	t := New("VectorA", "VectorB", "Category")
	for _, row := range [][]string{
		{"1", "4", "X"},
		{"2", "5", "Y"},
		{"3", "6", "Z"},
		{"1", "4", "X"},
		{"2", "6", "Y"},
		{"3", "5", "Z"},
	} {
		t.AppendRow(row...)
	}
	return t
}
