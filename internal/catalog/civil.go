package catalog

import "github.com/proposalforge/backend/internal/model"

// 民用工程（场地开发）提案目录。任务描述为既有提案使用的
// 样板原文，{{firm}} 在装配时替换为公司简称。
var civilCatalog = &Catalog{
	ID:          CatalogCivil,
	Name:        "Civil Engineering / Development Services",
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
	Margins:    Margins{Top: 1.0, Bottom: 1.0, Left: 1.0, Right: 1.0},
	Font:       "Arial",
	BodyFontPt: 11,

	StripPrefix: "Civil ",

	OpeningTemplate: `{{company}} ("{{firm}}" or "Consultant") is pleased to submit this Professional Services Agreement ("Agreement") to {{client}} ("Client") for professional services for the {{project}} ("Project").`,
	UnderstandingIntro:   `{{firm}} understands the following in preparing this proposal:`,
	UnderstandingClosing: `If any of these assumptions are not correct, then the scope and fee will change. Based on the above understanding, {{firm}} proposes the following scope of services:`,
	ServicesIntro:        `{{firm}} will provide the services specifically set forth below.`,
	LaborFeeTemplate:     `{{firm}} will perform the services in Tasks {{codes}} on a labor fee plus expense basis with the maximum labor fee shown above.`,

	Tasks: map[string]Task{
		"110": {
			Code:       "110",
			Name:       "Civil Engineering Design",
			DefaultFee: model.NewFee(40000),
			FeeType:    model.FeeHourlyNTE,
			Lines: tagLines(
				`{{firm}} will prepare an onsite drainage report with supporting calculations showing the proposed development plan is consistent with the Southwest Florida Water Management District Basis of Review. This design will account for the stormwater design to support the development of the project site. The drainage report will include limited stormwater modeling to demonstrate that the Lot A site development will maintain the existing discharge rate and provide the required stormwater attenuation.`,
				`The onsite drainage report will include calculations for 25-year 24-hour and 100-year 24-hour design storm conditions in accordance with Southwest Florida Water Management District Guidelines. A base stormwater design will be provided for the project site showing reasonable locations for stormwater conveyance features and stormwater management pond sizing.`,
			),
		},
		"120": {
			Code:       "120",
			Name:       "Civil Schematic Design",
			DefaultFee: model.NewFee(35000),
			FeeType:    model.FeeHourlyNTE,
			Lines: tagLines(
				`{{firm}} will prepare Civil Schematic Design deliverables in accordance with the Client's Design Project Deliverables Checklist. For the Civil Schematic Design task, the deliverables that {{firm}} will provide consist of Civil Site Plan, Establish Finish Floor Elevations, Utility Will Serve Letters and Points of Service, Utility Routing and Easement Requirements.`,
			),
		},
		"130": {
			Code:       "130",
			Name:       "Civil Design Development",
			DefaultFee: model.NewFee(45000),
			FeeType:    model.FeeHourlyNTE,
			Lines: tagLines(
				`Upon Client approval of the Schematic Design task, {{firm}} will prepare Design Development Plans of the civil design in accordance with the Client's Design Project Deliverables Checklist for Civil Design Development Deliverables. These documents will be approximately 50% complete and will include detail for City code review and preliminary pricing but will not include enough detail for construction bidding.`,
			),
		},
		"140": {
			Code:       "140",
			Name:       "Civil Construction Documents",
			DefaultFee: model.NewFee(50000),
			FeeType:    model.FeeHourlyNTE,
			Lines: tagLines(
				`Based on the approved Development Plan, {{firm}} will provide engineering and design services for the preparation of site construction plans for on-site improvements.`,
				`Cover Sheet`,
				`The cover sheet includes plan contents, vicinity map, legal description and team identification.`,
				`Existing Conditions Plan/Demolition Plan`,
				`This sheet will include and identify the required demolition of the existing items on the project site.`,
				`Site Layout Plan`,
				`This sheet will include building setback lines, property lines, outline of building footprint, parking areas, handicap access ramps, sidewalks, crosswalks, driveways, and traffic lanes.`,
				`Grading and Drainage Plan`,
				`This sheet will include existing and proposed spot elevations and contours, building finish floor elevations, parking area drainage patterns, and stormwater inlet and pipe locations and sizes.`,
				`Utility Plan`,
				`This sheet will show the location and size of all water, sanitary sewer and reclaimed water facilities required to serve the development.`,
				`Erosion and Sediment Control Plan`,
				`This sheet will include erosion and sediment control measures designed to be implemented during construction.`,
				`Details`,
				`Standard and modified typical construction details will be provided.`,
			),
		},
		"150": {
			Code:       "150",
			Name:       "Civil Permitting",
			DefaultFee: model.NewFee(40000),
			FeeType:    model.FeeHourlyNTE,
			Permits:    true,
			Lines: tagLines(
				`Prepare and submit on the Client's behalf the following permitting packages for review/approval of construction documents, and attend meetings required to obtain the following Agency approvals:`,
				`{{firm}} will coordinate with the local Development Review departments and with the Florida Department of Transportation and the county departments as needed to obtain the necessary regulatory and utility approval of the site plans and associated drainage facilities. We will assist the Client with meetings necessary to gain site plan approval.`,
				`NOTE: This scope does not anticipate a Geotechnical or Environmental Assessment Report, Survey, Topographic Survey, or Arborist Report be required for this permit application.`,
				`It is assumed Client will provide the needed information regarding the development program and requirements. {{firm}} will work with the Owner and their team to integrate the necessary design requirements into the Civil design to support entitlement, platting, and development approvals.`,
				`These permit applications will be submitted using the electronic permitting submittal system (web-based system) for the respective jurisdictions where applicable.`,
			),
		},
		"210": {
			Code:       "210",
			Name:       "Meetings and Coordination",
			DefaultFee: model.NewFee(20000),
			FeeType:    model.FeeHourlyNTE,
			Lines: tagLines(
				`{{firm}} will be available to provide miscellaneous project support at the direction of the Client. This task may include design meetings, additional permit support, permit research, or other miscellaneous tasks associated with the initial and future development of the project site. This task will also cover tasks such as design coordination meetings, scheduling, coordination with other client consultants, responses to additional rounds of agency comments.`,
			),
		},
	},

	Assumptions: []Assumption{
		{ID: "survey", Text: `Boundary, topographic, and tree survey will be provided by the Client.`},
		{ID: "environmental", Text: `An Environmental/Biological assessment and Geotechnical investigation report will be provided by the Client.`},
		{ID: "geotech", Text: `A Geotechnical investigation report will be provided by the Client.`},
		{ID: "zoning", Text: `The proposed use is consistent with the property's future land use and zoning designations.`},
		{ID: "conceptual_plan", Text: `This proposal is based on the conceptual site plan dated {{date}}.`, NeedsDate: true},
		{ID: "utilities", Text: `Utilities are available at the project boundary and have the capacity to serve the proposed development.`},
		{ID: "offsite", Text: `Offsite roadway improvements or right-of-way permitting is not included.`},
		{ID: "traffic", Text: `Traffic Study, impact analysis, and traffic counts, if required, will be provided by others.`},
		{ID: "one_phase", Text: `The project will be constructed in one (1) phase.`},
	},

	Counties:       floridaCounties,
	PermitDefaults: civilPermitDefaults,
}
