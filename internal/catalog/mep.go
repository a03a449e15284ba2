package catalog

import "github.com/proposalforge/backend/internal/model"

// 机电（MEP）提案目录。与民用目录共用信头，页边距、正文字号
// 与签字页不同；任务 340 携带工时槽位，数值替换进模板句。
var mepCatalog = &Catalog{
	ID:          CatalogMEP,
	Name:        "Mechanical / Electrical / Plumbing Services",
	CompanyName: "Meridian-Hale & Associates, Inc.",
	ShortName:   "Meridian-Hale",

	Wordmark: []WordmarkRun{
		{Text: "Meridian", Color: "58595B"},
		{Text: "»", Color: "58595B"},
		{Text: "Hale", Color: "A6192E"},
	},
	WordmarkSizePt: 28,
	WordmarkFont:   "Arial Narrow",
	FooterCells: []FooterCell{
		{WidthInches: 1.10, Fill: "5F5F5F", Text: "meridian-hale.com"},
		{WidthInches: 0.01},
		{WidthInches: 4.23, Fill: "A20C33", Text: "200 Central Avenue Suite 600 St. Petersburg, FL 33701"},
		{WidthInches: 0.01},
		{WidthInches: 0.96, Fill: "A20C33", Text: "(727) 822-5150"},
	},
	Margins:       Margins{Top: 1.0, Bottom: 0.75, Left: 1.0, Right: 1.0},
	Font:          "Arial",
	BodyFontPt:    10,
	SignaturePage: true,

	OpeningTemplate: `{{company}} ("{{firm}}" or "Consultant") is pleased to submit this Professional Services Agreement ("Agreement") to {{client}} ("Client") for mechanical, electrical, and plumbing engineering services for the {{project}} ("Project").`,
	UnderstandingIntro:   `{{firm}} understands the following in preparing this proposal:`,
	UnderstandingClosing: `If any of these assumptions are not correct, then the scope and fee will change. Based on the above understanding, {{firm}} proposes the following scope of services:`,
	ServicesIntro:        `{{firm}} will provide the services specifically set forth below.`,
	LaborFeeTemplate:     `{{firm}} will perform the services in Tasks {{codes}} on a labor fee plus expense basis with the maximum labor fee shown above.`,
	AcceptanceTemplate:   `If this Agreement is acceptable, please sign below and return one copy to {{firm}}. Receipt of a signed copy will serve as our notice to proceed.`,

	Tasks: map[string]Task{
		"310": {
			Code:       "310",
			Name:       "Mechanical Design",
			DefaultFee: model.NewFee(28000),
			FeeType:    model.FeeHourlyNTE,
			Lines: tagLines(
				`{{firm}} will prepare mechanical construction documents for the heating, ventilation, and air conditioning systems serving the Project. The design will include load calculations, equipment selection and scheduling, ductwork layout, and outside air ventilation sized in accordance with the Florida Building Code and ASHRAE 62.1.`,
				`Mechanical Schedules`,
				`Equipment schedules will identify capacities, electrical characteristics, and basis-of-design manufacturers for all scheduled equipment.`,
			),
		},
		"320": {
			Code:       "320",
			Name:       "Electrical Design",
			DefaultFee: model.NewFee(26000),
			FeeType:    model.FeeHourlyNTE,
			Lines: tagLines(
				`{{firm}} will prepare electrical construction documents including power distribution, branch circuiting, interior and exterior lighting, and service entrance design coordinated with the serving utility.`,
				`Panel Schedules`,
				`Panel schedules and a one-line riser diagram will be provided showing service size, feeder routing, and overcurrent protection.`,
				`NOTE: Low-voltage systems (security, data, audio/visual) are design-build by others and are not included in this scope.`,
			),
		},
		"330": {
			Code:       "330",
			Name:       "Plumbing Design",
			DefaultFee: model.NewFee(18000),
			FeeType:    model.FeeLumpSum,
			Lines: tagLines(
				`{{firm}} will prepare plumbing construction documents for domestic water, sanitary waste and vent, and storm drainage piping within the building envelope, including fixture schedules and water heater selection.`,
				`BOLD: Fire protection design is limited to performance specifications; hydraulic calculations will be provided by the design-build fire sprinkler contractor.`,
			),
		},
		"340": {
			Code:       "340",
			Name:       "Construction Phase Services",
			DefaultFee: model.NewFee(15000),
			FeeType:    model.FeeHourlyNTE,
			HourSlots: []HourSlot{
				{Key: "site_visits", Label: "Site visits", Default: 6},
				{Key: "shop_drawing_reviews", Label: "Shop drawing reviews", Default: 20},
				{Key: "rfi_responses", Label: "RFI responses", Default: 15},
			},
			Lines: tagLines(
				`{{firm}} will provide construction phase services in support of the mechanical, electrical, and plumbing trades. This task includes up to {{site_visits}} site visits at appropriate intervals during construction, review of up to {{shop_drawing_reviews}} shop drawing submittals, and responses to up to {{rfi_responses}} requests for information.`,
				`{{firm}} will prepare a punch list at substantial completion and perform one follow-up visit to confirm completion of punch list items. Services beyond the visit and review counts stated above will be performed as an additional service.`,
			),
		},
		"350": {
			Code:       "350",
			Name:       "Permitting Assistance",
			DefaultFee: model.NewFee(8000),
			FeeType:    model.FeeHourly,
			Lines: tagLines(
				`{{firm}} will assist the Client with building permit submittal of the mechanical, electrical, and plumbing construction documents and will prepare written responses to plan review comments issued by the authority having jurisdiction. Revisions required by code interpretation changes after permit issuance are not included.`,
			),
		},
	},

	Assumptions: []Assumption{
		{ID: "arch_backgrounds", Text: `Architectural backgrounds will be provided in AutoCAD or Revit format and are assumed to be dimensionally accurate.`},
		{ID: "service_capacity", Text: `Existing electrical service and utility capacity are adequate for the proposed development.`},
		{ID: "conceptual_plan", Text: `This proposal is based on the conceptual floor plan dated {{date}}.`, NeedsDate: true},
		{ID: "no_commissioning", Text: `Third-party commissioning, if required, will be contracted directly by the Client.`},
		{ID: "energy_code", Text: `Energy code compliance will be demonstrated by the prescriptive method; whole-building energy modeling is not included.`},
		{ID: "one_phase", Text: `The project will be constructed in one (1) phase.`},
	},

	Counties: floridaCounties,
}
