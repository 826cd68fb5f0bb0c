package commands

import (
	"fmt"

	"github.com/MyelinBots/matchbot-go/internal/services/catalog"
	"github.com/MyelinBots/matchbot-go/internal/services/notifier"
)

func genderKeyboard() [][]notifier.Button {
	return [][]notifier.Button{{
		{Label: "Male", Data: "gender_male"},
		{Label: "Female", Data: "gender_female"},
	}}
}

// universityKeyboard lays the closed university list out in rows of two,
// with callback data carrying the list index.
func universityKeyboard(prefix string) [][]notifier.Button {
	universities := catalog.Universities()
	var rows [][]notifier.Button
	for i := 0; i < len(universities); i += 2 {
		row := []notifier.Button{{Label: universities[i], Data: fmt.Sprintf("%s%d", prefix, i)}}
		if i+1 < len(universities) {
			row = append(row, notifier.Button{Label: universities[i+1], Data: fmt.Sprintf("%s%d", prefix, i+1)})
		}
		rows = append(rows, row)
	}
	return rows
}

// targetKeyboard is the registration multi-select: the sentinel row on top,
// the university grid with check marks on current selections, and a done row.
func targetKeyboard(selected []string) [][]notifier.Button {
	chosen := make(map[string]bool, len(selected))
	for _, s := range selected {
		chosen[s] = true
	}

	rows := [][]notifier.Button{{{Label: "All Universities", Data: "target_all"}}}
	universities := catalog.Universities()
	for i := 0; i < len(universities); i += 2 {
		row := []notifier.Button{{Label: targetLabel(universities[i], chosen), Data: fmt.Sprintf("target_%d", i)}}
		if i+1 < len(universities) {
			row = append(row, notifier.Button{Label: targetLabel(universities[i+1], chosen), Data: fmt.Sprintf("target_%d", i+1)})
		}
		rows = append(rows, row)
	}
	return append(rows, []notifier.Button{{Label: "Done Selecting", Data: "target_done"}})
}

func targetLabel(university string, chosen map[string]bool) string {
	if chosen[university] {
		return "✅ " + university
	}
	return university
}

// editTargetKeyboard is the single-shot edit variant, sentinel row last.
func editTargetKeyboard() [][]notifier.Button {
	rows := universityKeyboard("target_uni_")
	return append(rows, []notifier.Button{{Label: "All Universities", Data: "target_uni_all"}})
}

func relationshipKeyboard(prefix string) [][]notifier.Button {
	types := catalog.RelationshipPreferences()
	var rows [][]notifier.Button
	for i := 0; i < len(types); i += 2 {
		row := []notifier.Button{{Label: types[i], Data: fmt.Sprintf("%s%d", prefix, i)}}
		if i+1 < len(types) {
			row = append(row, notifier.Button{Label: types[i+1], Data: fmt.Sprintf("%s%d", prefix, i+1)})
		}
		rows = append(rows, row)
	}
	return rows
}

func completionKeyboard() [][]notifier.Button {
	return [][]notifier.Button{
		{{Label: "Start Matching", Data: "start_matching"}},
		{{Label: "Edit Profile", Data: "edit_profile"}},
	}
}

func editMenuKeyboard() [][]notifier.Button {
	return [][]notifier.Button{
		{{Label: "Edit Name", Data: "edit_name"}},
		{{Label: "Edit Age", Data: "edit_age"}},
		{{Label: "Edit Gender", Data: "edit_gender"}},
		{{Label: "Edit Profile Picture", Data: "edit_pic"}},
		{{Label: "Edit University", Data: "edit_university"}},
		{{Label: "Edit Target Universities", Data: "edit_target_unis"}},
		{{Label: "Edit Hobbies", Data: "edit_hobbies"}},
		{{Label: "Edit Bio", Data: "edit_bio"}},
		{{Label: "Edit Relationship Preference", Data: "edit_rel"}},
		{{Label: "Cancel", Data: "cancel_edit"}},
	}
}

func decisionKeyboard(targetID int64) [][]notifier.Button {
	return [][]notifier.Button{{
		{Label: "👎 Pass", Data: fmt.Sprintf("pass_%d", targetID)},
		{Label: "👍 Like", Data: fmt.Sprintf("like_%d", targetID)},
	}}
}

func matchActionsKeyboard(matchID int64) [][]notifier.Button {
	return [][]notifier.Button{
		{{Label: "Chat", Data: fmt.Sprintf("chat_%d", matchID)}},
		{
			{Label: "Unmatch", Data: fmt.Sprintf("unmatch_%d", matchID)},
			{Label: "Block", Data: fmt.Sprintf("block_%d", matchID)},
		},
		{{Label: "Report", Data: fmt.Sprintf("report_%d", matchID)}},
	}
}

func crushTypeKeyboard() [][]notifier.Button {
	return [][]notifier.Button{
		{{Label: "Add a user from this bot", Data: "crush_registered"}},
		{{Label: "Add someone not on this bot", Data: "crush_external"}},
	}
}
