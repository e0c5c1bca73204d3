package stats

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"
)

// ToolStats represents statistics for a single tool
type ToolStats struct {
	Name                 string        `json:"name"`
	CallCount            int           `json:"call_count"`
	ErrorCount           int           `json:"error_count"`
	TotalExecutionTime   time.Duration `json:"total_execution_time"`
	AverageExecutionTime time.Duration `json:"average_execution_time"`
	OutputBytes          int           `json:"output_bytes"`
	LastUsed             time.Time     `json:"last_used"`
}

// record adds one call to the tool statistics
func (t *ToolStats) record(executionTime time.Duration, outputBytes int, failed bool) {
	t.CallCount++
	if failed {
		t.ErrorCount++
	}
	t.TotalExecutionTime += executionTime
	t.AverageExecutionTime = t.TotalExecutionTime / time.Duration(t.CallCount)
	t.OutputBytes += outputBytes
	t.LastUsed = time.Now()
}

// SessionStats represents statistics since the server started
type SessionStats struct {
	StartTime time.Time             `json:"start_time"`
	Tools     map[string]*ToolStats `json:"tools"`
}

// PersistentStats represents statistics persisted across server runs
type PersistentStats struct {
	FirstRecorded time.Time             `json:"first_recorded"`
	LastUpdated   time.Time             `json:"last_updated"`
	Tools         map[string]*ToolStats `json:"tools"`
}

// StatsManager manages tool usage statistics. With an empty file path the
// statistics are kept in memory only.
type StatsManager struct {
	sessionStats    *SessionStats
	persistentStats *PersistentStats
	statsFilePath   string
	mutex           sync.RWMutex
}

// NewStatsManager creates a new StatsManager, loading statsFilePath if it exists
func NewStatsManager(statsFilePath string) (*StatsManager, error) {
	manager := &StatsManager{
		sessionStats: &SessionStats{
			StartTime: time.Now(),
			Tools:     make(map[string]*ToolStats),
		},
		persistentStats: &PersistentStats{
			FirstRecorded: time.Now(),
			LastUpdated:   time.Now(),
			Tools:         make(map[string]*ToolStats),
		},
		statsFilePath: statsFilePath,
	}
	if statsFilePath == "" {
		return manager, nil
	}

	if err := os.MkdirAll(filepath.Dir(statsFilePath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory for stats file: %w", err)
	}

	data, err := os.ReadFile(statsFilePath)
	if err == nil {
		if err := json.Unmarshal(data, manager.persistentStats); err != nil {
			return nil, fmt.Errorf("failed to parse stats file: %w", err)
		}
		if manager.persistentStats.Tools == nil {
			manager.persistentStats.Tools = make(map[string]*ToolStats)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read stats file: %w", err)
	}

	return manager, nil
}

// RecordToolUsage records statistics for a tool call
func (m *StatsManager) RecordToolUsage(toolName string, executionTime time.Duration, outputBytes int, failed bool) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	toolStats(m.sessionStats.Tools, toolName).record(executionTime, outputBytes, failed)
	toolStats(m.persistentStats.Tools, toolName).record(executionTime, outputBytes, failed)
	m.persistentStats.LastUpdated = time.Now()

	return m.savePersistentStats()
}

func toolStats(tools map[string]*ToolStats, name string) *ToolStats {
	t, ok := tools[name]
	if !ok {
		t = &ToolStats{Name: name}
		tools[name] = t
	}
	return t
}

// GetSessionStats returns a copy of the statistics since the server started
func (m *StatsManager) GetSessionStats() *SessionStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return &SessionStats{
		StartTime: m.sessionStats.StartTime,
		Tools:     copyTools(m.sessionStats.Tools),
	}
}

// GetPersistentStats returns a copy of the statistics persisted across runs
func (m *StatsManager) GetPersistentStats() *PersistentStats {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	return &PersistentStats{
		FirstRecorded: m.persistentStats.FirstRecorded,
		LastUpdated:   m.persistentStats.LastUpdated,
		Tools:         copyTools(m.persistentStats.Tools),
	}
}

// ResetSessionStats resets the statistics of the current session
func (m *StatsManager) ResetSessionStats() {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	m.sessionStats = &SessionStats{
		StartTime: time.Now(),
		Tools:     make(map[string]*ToolStats),
	}
}

func copyTools(tools map[string]*ToolStats) map[string]*ToolStats {
	out := make(map[string]*ToolStats, len(tools))
	for name, tool := range tools {
		toolCopy := *tool
		out[name] = &toolCopy
	}
	return out
}

// savePersistentStats saves persistent stats to file
func (m *StatsManager) savePersistentStats() error {
	if m.statsFilePath == "" {
		return nil
	}

	data, err := json.MarshalIndent(m.persistentStats, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal stats: %w", err)
	}

	if err := os.WriteFile(m.statsFilePath, data, 0644); err != nil {
		return fmt.Errorf("failed to write stats file: %w", err)
	}

	return nil
}

// FormatStats formats statistics as a string
func FormatStats(sessionStats *SessionStats, persistentStats *PersistentStats) string {
	var b strings.Builder
	b.WriteString("Tool Usage Statistics\n\n")

	b.WriteString("Current Session Statistics:\n")
	fmt.Fprintf(&b, "Session started: %s\n", sessionStats.StartTime.Format(time.RFC3339))
	fmt.Fprintf(&b, "Session duration: %s\n\n", time.Since(sessionStats.StartTime).Round(time.Second))
	if len(sessionStats.Tools) > 0 {
		formatTable(&b, sessionStats.Tools)
	} else {
		b.WriteString("No tools used in this session.\n")
	}

	b.WriteString("\nAll-Time Statistics:\n")
	fmt.Fprintf(&b, "First recorded: %s\n", persistentStats.FirstRecorded.Format(time.RFC3339))
	fmt.Fprintf(&b, "Last updated: %s\n\n", persistentStats.LastUpdated.Format(time.RFC3339))
	if len(persistentStats.Tools) > 0 {
		formatTable(&b, persistentStats.Tools)
	} else {
		b.WriteString("No tools used across all sessions.\n")
	}

	return b.String()
}

// formatTable writes one row per tool, sorted by name
func formatTable(b *strings.Builder, tools map[string]*ToolStats) {
	names := make([]string, 0, len(tools))
	for name := range tools {
		names = append(names, name)
	}
	sort.Strings(names)

	b.WriteString("Tool                  | Calls | Errors | Avg Time  | Total Time | Output\n")
	b.WriteString("----------------------|-------|--------|-----------|------------|--------\n")
	for _, name := range names {
		tool := tools[name]
		fmt.Fprintf(b, "%-22s| %5d | %6d | %9s | %10s | %6d\n",
			tool.Name,
			tool.CallCount,
			tool.ErrorCount,
			tool.AverageExecutionTime.Round(time.Millisecond).String(),
			tool.TotalExecutionTime.Round(time.Millisecond).String(),
			tool.OutputBytes)
	}
}
