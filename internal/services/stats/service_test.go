package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/statboard/statboard/internal/model"
)

type ServiceSuite struct {
	suite.Suite
	service *Service
}

func TestServiceSuite(t *testing.T) {
	suite.Run(t, new(ServiceSuite))
}

func (s *ServiceSuite) SetupTest() {
	s.service = New(nil)
}

// Parse tests

func (s *ServiceSuite) TestParseFullDocument() {
	doc, ok := s.service.Parse(`{
		"stats": {
			"minecraft:mined": {"minecraft:stone": 100, "minecraft:dirt": 50},
			"minecraft:custom": {"minecraft:play_time": 72000, "minecraft:deaths": 3}
		},
		"DataVersion": 3465
	}`)

	s.Require().True(ok)
	s.Equal(3465, doc.DataVersion)
	s.Len(doc.Category(model.CategoryMined), 2)
	s.Equal(float64(72000), doc.Custom(model.CustomPlayTime))
}

func (s *ServiceSuite) TestParseMalformedInput() {
	inputs := []string{
		"",
		"not json",
		"null",
		"42",
		`"a string"`,
		"[1, 2, 3]",
		`{"stats": `,
		"{",
	}

	for _, input := range inputs {
		doc, ok := s.service.Parse(input)
		s.False(ok, "input %q should not parse", input)
		s.Nil(doc)
	}
}

func (s *ServiceSuite) TestParseEmptyObject() {
	doc, ok := s.service.Parse("{}")
	s.Require().True(ok)
	s.Zero(doc.DataVersion)
	s.Nil(doc.Category(model.CategoryMined))
}

func (s *ServiceSuite) TestParseTolerantOfWrongTypes() {
	// Wrong-typed sections are dropped rather than failing the whole parse
	doc, ok := s.service.Parse(`{
		"stats": {
			"minecraft:mined": "not an object",
			"minecraft:crafted": {"minecraft:stick": 4}
		},
		"DataVersion": "not a number"
	}`)

	s.Require().True(ok)
	s.Zero(doc.DataVersion)
	s.Nil(doc.Category(model.CategoryMined))
	s.Equal(float64(4), doc.Category(model.CategoryCrafted)["minecraft:stick"])
}

// BuildRow tests

func (s *ServiceSuite) TestBuildRow() {
	doc, ok := s.service.Parse(`{
		"stats": {
			"minecraft:mined": {"minecraft:stone": 120, "minecraft:deepslate": 80},
			"minecraft:crafted": {"minecraft:stick": 16, "minecraft:torch": 4},
			"minecraft:used": {"minecraft:cobblestone": 90, "minecraft:diamond_sword": 500},
			"minecraft:custom": {
				"minecraft:play_time": 123456,
				"minecraft:deaths": 7,
				"minecraft:mob_kills": 42,
				"minecraft:walk_one_cm": 1000,
				"minecraft:sprint_one_cm": 2000,
				"minecraft:boat_one_cm": 500
			}
		}
	}`)
	s.Require().True(ok)

	row := s.service.BuildRow("069a79f444e94726a5befca90e38aaf5", "Notch", doc)

	s.Equal("069a79f444e94726a5befca90e38aaf5", row.UUID)
	s.Equal("Notch", row.Name)
	s.Equal(float64(123456), row.PlayTimeTicks)
	s.Equal(float64(7), row.Deaths)
	s.Equal(float64(42), row.MobKills)
	s.Equal(float64(3500), row.DistanceCm)
	s.Equal(float64(200), row.BlocksMined)
	s.Equal(float64(90), row.BlocksPlaced)
	s.Equal(float64(20), row.ItemsCrafted)
}

func (s *ServiceSuite) TestBuildRowNilDocumentZeroFills() {
	row := s.service.BuildRow("069a79f444e94726a5befca90e38aaf5", "Notch", nil)

	s.Equal("Notch", row.Name)
	s.Zero(row.PlayTimeTicks)
	s.Zero(row.Deaths)
	s.Zero(row.DistanceCm)
	s.Zero(row.BlocksMined)
	s.Zero(row.BlocksPlaced)
	s.Zero(row.ItemsCrafted)
	s.Zero(row.MobKills)
}

func (s *ServiceSuite) TestBuildRowMissingCategories() {
	doc, ok := s.service.Parse(`{"stats": {"minecraft:custom": {"minecraft:deaths": 2}}}`)
	s.Require().True(ok)

	row := s.service.BuildRow("069a79f444e94726a5befca90e38aaf5", "Notch", doc)

	s.Equal(float64(2), row.Deaths)
	s.Zero(row.BlocksMined)
	s.Zero(row.BlocksPlaced)
	s.Zero(row.ItemsCrafted)
	s.Zero(row.DistanceCm)
}

func (s *ServiceSuite) TestBuildRowAllDistanceCounters() {
	doc, ok := s.service.Parse(`{
		"stats": {
			"minecraft:custom": {
				"minecraft:walk_one_cm": 1,
				"minecraft:sprint_one_cm": 2,
				"minecraft:fly_one_cm": 3,
				"minecraft:swim_one_cm": 4,
				"minecraft:walk_under_water_one_cm": 5,
				"minecraft:walk_on_water_one_cm": 6,
				"minecraft:boat_one_cm": 7,
				"minecraft:minecart_one_cm": 8,
				"minecraft:horse_one_cm": 9,
				"minecraft:aviate_one_cm": 10,
				"minecraft:climb_one_cm": 11,
				"minecraft:crouch_one_cm": 12,
				"minecraft:fall_one_cm": 10000
			}
		}
	}`)
	s.Require().True(ok)

	row := s.service.BuildRow("069a79f444e94726a5befca90e38aaf5", "Notch", doc)

	// fall_one_cm is not a movement mode and must not contribute
	s.Equal(float64(78), row.DistanceCm)
}

func (s *ServiceSuite) TestBuildRowEstimatesBlocksPlaced() {
	doc, ok := s.service.Parse(`{
		"stats": {
			"minecraft:used": {
				"minecraft:stone": 5,
				"minecraft:diamond_sword": 3,
				"minecraft:bread": 2
			}
		}
	}`)
	s.Require().True(ok)

	row := s.service.BuildRow("069a79f444e94726a5befca90e38aaf5", "Notch", doc)

	s.Equal(float64(5), row.BlocksPlaced)
}

func (s *ServiceSuite) TestBuildRowIgnoresMalformedCounters() {
	doc, ok := s.service.Parse(`{
		"stats": {
			"minecraft:mined": {"minecraft:stone": 10, "minecraft:dirt": "many", "minecraft:sand": null},
			"minecraft:custom": {"minecraft:play_time": true}
		}
	}`)
	s.Require().True(ok)

	row := s.service.BuildRow("069a79f444e94726a5befca90e38aaf5", "Notch", doc)

	s.Equal(float64(10), row.BlocksMined)
	s.Zero(row.PlayTimeTicks)
}

// coercion primitives

func TestCoerce(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want float64
	}{
		{"float", 12.5, 12.5},
		{"zero", float64(0), 0},
		{"negative passes through", -3.0, -3},
		{"int", 7, 7},
		{"int64", int64(9), 9},
		{"nil", nil, 0},
		{"string", "42", 0},
		{"bool", true, 0},
		{"map", map[string]any{}, 0},
		{"NaN", math.NaN(), 0},
		{"+Inf", math.Inf(1), 0},
		{"-Inf", math.Inf(-1), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := coerce(tt.in); got != tt.want {
				t.Errorf("coerce(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSumAll(t *testing.T) {
	if got := sumAll(nil); got != 0 {
		t.Errorf("sumAll(nil) = %v, want 0", got)
	}
	if got := sumAll(map[string]any{}); got != 0 {
		t.Errorf("sumAll(empty) = %v, want 0", got)
	}

	m := map[string]any{
		"a": 1.0,
		"b": 2.5,
		"c": "junk",
		"d": math.NaN(),
	}
	if got := sumAll(m); got != 3.5 {
		t.Errorf("sumAll = %v, want 3.5", got)
	}
}
