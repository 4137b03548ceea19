package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestJobStatus_Valid(t *testing.T) {
	assert.True(t, JobStatusPending.Valid())
	assert.True(t, JobStatusInterview.Valid())
	assert.True(t, JobStatusDecline.Valid())
	assert.False(t, JobStatus("hired").Valid())
	assert.False(t, JobStatus("").Valid())
}

func TestJobPatch_Normalize(t *testing.T) {
	empty := ""
	role := "SRE"
	status := JobStatusDecline
	emptyStatus := JobStatus("")

	tests := []struct {
		name  string
		patch JobPatch
		want  JobPatch
	}{
		{name: "nothing set", patch: JobPatch{}, want: JobPatch{}},
		{name: "empty strings dropped", patch: JobPatch{Role: &empty, Company: &empty, Status: &emptyStatus}, want: JobPatch{}},
		{name: "set fields kept", patch: JobPatch{Role: &role, Status: &status}, want: JobPatch{Role: &role, Status: &status}},
		{name: "mixed", patch: JobPatch{Role: &role, Company: &empty}, want: JobPatch{Role: &role}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.patch.Normalize())
		})
	}
}
