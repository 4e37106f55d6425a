package database

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/jmalherbe/cadence/internal/models"
)

type ExportRound struct {
	ID        int64  `json:"id"`
	Title     string `json:"title"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	CreatedAt string `json:"created_at"`
}

type ExportGoal struct {
	ID              int64  `json:"id"`
	RoundID         int64  `json:"round_id"`
	Title           string `json:"title"`
	Frequency       string `json:"frequency"`
	DurationSeconds int    `json:"duration_seconds"`
	CreatedAt       string `json:"created_at"`
}

type ExportProgress struct {
	ID              int64   `json:"id"`
	RoundID         int64   `json:"round_id"`
	GoalID          int64   `json:"goal_id"`
	TargetDate      string  `json:"target_date"`
	CompletedAt     string  `json:"completed_at"`
	DurationSeconds int     `json:"duration_seconds"`
	Notes           *string `json:"notes,omitempty"`
	IsAmendment     bool    `json:"is_amendment,omitempty"`
}

// VaultExport is the full backup payload.
type VaultExport struct {
	ExportedAt string           `json:"exported_at"`
	Rounds     []ExportRound    `json:"rounds"`
	Goals      []ExportGoal     `json:"goals"`
	Progress   []ExportProgress `json:"progress"`
}

type ExportOptions struct {
	EncryptOutput bool
	Passphrase    string
}

// ExportAll serializes every round, goal, and progress entry. With
// EncryptOutput set, the JSON payload is sealed with the passphrase.
func (d *Database) ExportAll(ctx context.Context, opts ExportOptions) ([]byte, error) {
	vault := VaultExport{ExportedAt: time.Now().UTC().Format(time.RFC3339)}

	rounds, err := d.ListRounds(ctx)
	if err != nil {
		return nil, err
	}
	for _, r := range rounds {
		vault.Rounds = append(vault.Rounds, ExportRound{
			ID:        r.ID,
			Title:     r.Title,
			StartDate: r.StartDate,
			EndDate:   r.EndDate,
			CreatedAt: r.CreatedAt.UTC().Format(time.RFC3339),
		})
		goals, err := d.GoalsForRound(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		for _, g := range goals {
			vault.Goals = append(vault.Goals, ExportGoal{
				ID:              g.ID,
				RoundID:         g.RoundID,
				Title:           g.Title,
				Frequency:       g.Frequency.Rule(),
				DurationSeconds: g.DurationSeconds,
				CreatedAt:       g.CreatedAt.UTC().Format(time.RFC3339),
			})
		}
		byGoal, err := d.ProgressForRound(ctx, r.ID)
		if err != nil {
			return nil, err
		}
		for _, entries := range byGoal {
			for _, p := range entries {
				vault.Progress = append(vault.Progress, ExportProgress{
					ID:              p.ID,
					RoundID:         p.RoundID,
					GoalID:          p.GoalID,
					TargetDate:      p.TargetDate,
					CompletedAt:     p.CompletedAt.UTC().Format(time.RFC3339),
					DurationSeconds: p.DurationSeconds,
					Notes:           p.Notes,
					IsAmendment:     p.IsAmendment,
				})
			}
		}
	}

	payload, err := json.MarshalIndent(vault, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshal export: %w", err)
	}
	if opts.EncryptOutput {
		return encryptData(payload, opts.Passphrase)
	}
	return payload, nil
}

// ImportAll restores an unencrypted vault payload into an empty database.
// IDs are not preserved; references are remapped as rows are inserted.
func (d *Database) ImportAll(ctx context.Context, payload []byte) error {
	var vault VaultExport
	if err := json.Unmarshal(payload, &vault); err != nil {
		return fmt.Errorf("unmarshal import: %w", err)
	}

	roundIDs := make(map[int64]int64, len(vault.Rounds))
	goalIDs := make(map[int64]int64, len(vault.Goals))

	for _, r := range vault.Rounds {
		id, err := d.CreateRound(ctx, r.Title, r.StartDate, r.EndDate)
		if err != nil {
			return err
		}
		roundIDs[r.ID] = id
	}
	for _, g := range vault.Goals {
		roundID, ok := roundIDs[g.RoundID]
		if !ok {
			return fmt.Errorf("import goal %d: unknown round %d", g.ID, g.RoundID)
		}
		freq, err := models.ParseFrequency(g.Frequency)
		if err != nil {
			return fmt.Errorf("import goal %d: %w", g.ID, err)
		}
		id, err := d.AddGoal(ctx, roundID, g.Title, freq, g.DurationSeconds)
		if err != nil {
			return err
		}
		goalIDs[g.ID] = id
	}
	for _, p := range vault.Progress {
		roundID, ok := roundIDs[p.RoundID]
		if !ok {
			return fmt.Errorf("import progress %d: unknown round %d", p.ID, p.RoundID)
		}
		goalID, ok := goalIDs[p.GoalID]
		if !ok {
			return fmt.Errorf("import progress %d: unknown goal %d", p.ID, p.GoalID)
		}
		completedAt, err := time.Parse(time.RFC3339, p.CompletedAt)
		if err != nil {
			return fmt.Errorf("import progress %d: %w", p.ID, err)
		}
		entry := models.GoalProgress{
			RoundID:         roundID,
			GoalID:          goalID,
			TargetDate:      p.TargetDate,
			CompletedAt:     completedAt,
			DurationSeconds: p.DurationSeconds,
			Notes:           p.Notes,
			IsAmendment:     p.IsAmendment,
		}
		if _, err := d.AddProgress(ctx, entry); err != nil {
			return err
		}
	}
	return nil
}
