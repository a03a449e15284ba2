package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// 测试 Get/List - 目录注册表
func TestRegistry(t *testing.T) {
	civil, err := Get(CatalogCivil)
	assert.NoError(t, err)
	assert.Equal(t, "civil", civil.ID)
	assert.False(t, civil.SignaturePage)

	mep, err := Get(CatalogMEP)
	assert.NoError(t, err)
	assert.True(t, mep.SignaturePage)

	_, err = Get("structural")
	assert.Error(t, err)

	all := List()
	assert.Len(t, all, 2)
	assert.Equal(t, CatalogCivil, all[0].ID, "列表按 ID 升序")
	assert.Equal(t, CatalogMEP, all[1].ID)
}

// 测试 SortedTasks - 始终按编号升序
func TestSortedTasks(t *testing.T) {
	civil, _ := Get(CatalogCivil)
	tasks := civil.SortedTasks()
	assert.Len(t, tasks, 6)
	for i := 1; i < len(tasks); i++ {
		assert.Less(t, tasks[i-1].Code, tasks[i].Code)
	}
	assert.Equal(t, "110", tasks[0].Code)
	assert.Equal(t, "210", tasks[len(tasks)-1].Code)
}

// 测试民用目录的任务配置
func TestCivilTasks(t *testing.T) {
	civil, _ := Get(CatalogCivil)

	permitting, ok := civil.Task("150")
	assert.True(t, ok)
	assert.True(t, permitting.Permits, "许可任务应接收审批机构清单")
	assert.Equal(t, "40000", permitting.DefaultFee.String())

	// NOTE 行在构建目录时已打好标记
	var foundNote bool
	for _, line := range permitting.Lines {
		if line.Kind == LineNote {
			foundNote = true
			assert.True(t, strings.HasPrefix(line.Text, "Note:"))
		}
	}
	assert.True(t, foundNote)

	design, _ := civil.Task("140")
	var headings []string
	for _, line := range design.Lines {
		if line.Kind == LineHeading {
			headings = append(headings, line.Text)
		}
	}
	assert.Contains(t, headings, "Site Layout Plan")
	assert.Contains(t, headings, "Utility Plan")
	assert.NotContains(t, headings, "Erosion and Sediment Control Plan")
}

// 测试 MEP 目录的工时槽位
func TestMEPHourSlots(t *testing.T) {
	mep, _ := Get(CatalogMEP)
	ca, ok := mep.Task("340")
	assert.True(t, ok)
	assert.Len(t, ca.HourSlots, 3)
	assert.Equal(t, "site_visits", ca.HourSlots[0].Key)
	assert.Equal(t, 6, ca.HourSlots[0].Default)
	assert.Equal(t, 20, ca.HourSlots[1].Default)
	assert.Equal(t, 15, ca.HourSlots[2].Default)
}

// 测试假设清单查询与县默认审批机构
func TestAssumptionsAndPermits(t *testing.T) {
	civil, _ := Get(CatalogCivil)

	a, ok := civil.Assumption("conceptual_plan")
	assert.True(t, ok)
	assert.True(t, a.NeedsDate)
	assert.Contains(t, a.Text, "{{date}}")

	_, ok = civil.Assumption("unknown")
	assert.False(t, ok)

	permits := civil.DefaultPermits("Pinellas")
	assert.NotEmpty(t, permits)
	assert.Contains(t, permits[0], "Pinellas County")

	assert.Empty(t, civil.DefaultPermits("Orange"))

	mep, _ := Get(CatalogMEP)
	assert.Nil(t, mep.DefaultPermits("Pinellas"), "MEP 目录不带审批机构映射")
}
