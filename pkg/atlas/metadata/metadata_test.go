package metadata

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFixtures(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	// Topic.csv carries a UTF-8 byte-order mark, as the sharepoint
	// exports do.
	files := map[string]string{
		"Topic.csv": "\ufeffTopic_Mnemonic,Topic_Title,Topic_Description\n" +
			"DEM,Demography,People and where they live\n" +
			"AGE, Age , Age breakdowns \n",
		"Variable.csv": "Variable_Mnemonic,Variable_Title,Variable_Description,Statistical_Unit\n" +
			"AGE_5YR,Age,Age in five year bands,Person\n",
		"Classification.csv": "Classification_Mnemonic,External_Classification_Label_English\n" +
			"AGE_5YR_2A,Age (2 categories)\n",
		"Category.csv": "Category_Code,Category_Label\n" +
			"1,First\n",
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0644); err != nil {
			t.Fatalf("Failed to write fixture %s: %v", name, err)
		}
	}
	return dir
}

func TestLoad(t *testing.T) {
	dir := writeFixtures(t)

	set, err := Load(dir, DefaultFiles())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(set[TableTopics]) != 2 {
		t.Errorf("Expected 2 topic records, got %d", len(set[TableTopics]))
	}
	// The BOM must not leak into the first header name.
	if got := set[TableTopics][0]["Topic_Mnemonic"]; got != "DEM" {
		t.Errorf("Expected Topic_Mnemonic %q, got %q", "DEM", got)
	}
	if len(set[TableCategories]) != 1 {
		t.Errorf("Expected 1 category record, got %d", len(set[TableCategories]))
	}
}

func TestLoadMissingFile(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(dir, DefaultFiles()); err == nil {
		t.Fatal("Expected error for missing lookup files, got nil")
	}
}

func TestTopicLookup(t *testing.T) {
	set, err := Load(writeFixtures(t), DefaultFiles())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	tests := []struct {
		query     string
		found     bool
		wantName  string
		wantDesc  string
	}{
		{"DEM", true, "Demography", "People and where they live"},
		{"demography", true, "Demography", "People and where they live"},
		{" people and where they live ", true, "Demography", "People and where they live"},
		{"age", true, "Age", "Age breakdowns"},
		{"Travel", false, "", ""},
	}

	for _, tt := range tests {
		meta, found := set.Topic(tt.query)
		if found != tt.found {
			t.Errorf("Topic(%q) found = %v, expected %v", tt.query, found, tt.found)
			continue
		}
		if !found {
			continue
		}
		if meta.Name != tt.wantName || meta.Desc != tt.wantDesc {
			t.Errorf("Topic(%q) = {%q, %q}, expected {%q, %q}",
				tt.query, meta.Name, meta.Desc, tt.wantName, tt.wantDesc)
		}
	}
}

func TestVariableLookup(t *testing.T) {
	set, err := Load(writeFixtures(t), DefaultFiles())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	meta, found := set.Variable("age_5yr")
	if !found {
		t.Fatal("Expected variable AGE_5YR to be found")
	}
	if meta.Name != "Age" || meta.Units != "Person" {
		t.Errorf("Variable lookup = {%q, %q, %q}", meta.Name, meta.Desc, meta.Units)
	}

	if _, found := set.Variable("MISSING"); found {
		t.Error("Expected variable MISSING to be absent")
	}
}

func TestClassificationLookup(t *testing.T) {
	set, err := Load(writeFixtures(t), DefaultFiles())
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	// Internal spaces in the query are stripped before matching.
	meta, found := set.Classification("AGE_5YR _2A")
	if !found {
		t.Fatal("Expected classification AGE_5YR_2A to be found")
	}
	if meta.Desc != "Age (2 categories)" {
		t.Errorf("Classification desc = %q", meta.Desc)
	}

	if _, found := set.Classification("AGE_5YR_9Z"); found {
		t.Error("Expected classification AGE_5YR_9Z to be absent")
	}
}
