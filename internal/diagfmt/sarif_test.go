package diagfmt_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"dangle/internal/diagfmt"
)

func TestSarifShape(t *testing.T) {
	bag, fs, _ := sampleBag(t)

	var buf bytes.Buffer
	err := diagfmt.Sarif(&buf, bag, fs, diagfmt.SarifRunMeta{ToolName: "dangle", ToolVersion: "0.1.0"})
	if err != nil {
		t.Fatalf("Sarif: %v", err)
	}

	var out struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name  string `json:"name"`
					Rules []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Results []struct {
				RuleID  string `json:"ruleId"`
				Level   string `json:"level"`
				Message struct {
					Text string `json:"text"`
				} `json:"message"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine   int `json:"startLine"`
							StartColumn int `json:"startColumn"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if out.Version != "2.1.0" || len(out.Runs) != 1 {
		t.Fatalf("version = %q, runs = %d", out.Version, len(out.Runs))
	}
	run := out.Runs[0]
	if run.Tool.Driver.Name != "dangle" {
		t.Errorf("driver name = %q", run.Tool.Driver.Name)
	}
	if len(run.Tool.Driver.Rules) != 1 || run.Tool.Driver.Rules[0].ID != "STY3001" {
		t.Errorf("rules = %+v", run.Tool.Driver.Rules)
	}
	if len(run.Results) != 1 {
		t.Fatalf("results = %d, want 1", len(run.Results))
	}
	res := run.Results[0]
	if res.RuleID != "STY3001" || res.Level != "warning" {
		t.Errorf("ruleId/level = %s/%s", res.RuleID, res.Level)
	}
	if res.Message.Text != "Unexpected trailing comma." {
		t.Errorf("message = %q", res.Message.Text)
	}
	loc := res.Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "sample.js" {
		t.Errorf("uri = %q", loc.ArtifactLocation.URI)
	}
	if loc.Region.StartLine != 1 || loc.Region.StartColumn != 16 {
		t.Errorf("region = %+v", loc.Region)
	}
}
