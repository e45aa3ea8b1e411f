package orientation

import "testing"

func TestValidateValue_SingleChoice(t *testing.T) {
	q := Question{ID: 1, Type: TypeSingleChoice, Options: []string{"Sciences", "Lettres"}}

	cases := []struct {
		name    string
		value   Value
		wantErr bool
	}{
		{"listed option", Choice("Sciences"), false},
		{"unlisted option", Choice("Droit"), true},
		{"empty string", Choice(""), true},
		{"nil", nil, true},
		{"wrong shape", Rating(2), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateValue(q, tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateValue(%v) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestValidateValue_RatingScale(t *testing.T) {
	q := Question{ID: 2, Type: TypeRatingScale}

	cases := []struct {
		name    string
		value   Value
		wantErr bool
	}{
		{"lower bound", Rating(1), false},
		{"upper bound", Rating(5), false},
		{"below range", Rating(0), true},
		{"above range", Rating(6), true},
		{"fractional", 3.5, true},
		{"string digit", Choice("3"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateValue(q, tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateValue(%v) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}

func TestValidateValue_Ranking(t *testing.T) {
	q := Question{ID: 3, Type: TypeRanking, Options: []string{"X", "Y", "Z"}}

	cases := []struct {
		name    string
		value   Value
		wantErr bool
	}{
		{"full permutation", Ranking([]string{"Z", "X", "Y"}), false},
		{"missing option", Ranking([]string{"X", "Y"}), true},
		{"duplicate option", Ranking([]string{"X", "X", "Y"}), true},
		{"unknown label", Ranking([]string{"X", "Y", "W"}), true},
		{"empty", Ranking(nil), true},
		{"wrong shape", Rating(1), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := ValidateValue(q, tc.value)
			if (err != nil) != tc.wantErr {
				t.Errorf("ValidateValue(%v) error = %v, wantErr %v", tc.value, err, tc.wantErr)
			}
		})
	}
}
