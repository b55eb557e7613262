package service

import (
	"strings"

	"github.com/pageza/tinybites/backend/internal/model"
	"github.com/pageza/tinybites/backend/internal/types"
)

// The fallback generator is a pure function of its inputs: identical
// (text, mode, language) queries yield byte-identical output. It never
// calls external services and never fails, so every failure branch of the
// pipeline can terminate here with a schema-valid payload.

// splitIngredients breaks the free-form ingredient text on the separators
// the clients use (、 , ，), dropping empty pieces.
func splitIngredients(text string) []string {
	parts := strings.FieldsFunc(text, func(r rune) bool {
		return r == '、' || r == ',' || r == '，'
	})
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// FallbackRecipes produces the deterministic template RecipeResponse used
// whenever the upstream cannot deliver. The user's ingredients are folded
// into the first two templates; the third is fixed.
func FallbackRecipes(q types.MealQuery) *model.RecipeResponse {
	base := splitIngredients(q.Text)
	if len(base) == 0 {
		base = []string{"高麗菜", "紅蘿蔔"}
	}

	stirFryIngredients := make([]model.IngredientItem, 0, len(base))
	for _, ing := range base {
		stirFryIngredients = append(stirFryIngredients, model.IngredientItem{Name: ing, Amount: "50g"})
	}

	frittataIngredients := make([]model.IngredientItem, 0, len(base)+3)
	for _, ing := range base {
		frittataIngredients = append(frittataIngredients, model.IngredientItem{Name: ing, Amount: "30g"})
	}
	frittataIngredients = append(frittataIngredients,
		model.IngredientItem{Name: "雞蛋", Amount: "2顆"},
		model.IngredientItem{Name: "起司絲", Amount: "20g"},
		model.IngredientItem{Name: "蔥花", Amount: "少許"},
	)

	return &model.RecipeResponse{
		Recipes: []model.Recipe{
			{
				Style:       model.StyleChinese,
				Title:       "寶寶版清炒時蔬",
				Ingredients: stirFryIngredients,
				Nutrition: model.NutritionInfo{
					Calories: 120,
					Tags:     []string{"維生素C", "纖維質", "低熱量"},
					Benefit:  "快速上桌，保留蔬菜原味！富含維生素C，有助於增強免疫力。",
					Macros:   model.Macros{Protein: "3g", Carbs: "20g", Fat: "5g"},
					Micronutrients: &model.Micronutrients{
						Calcium: "45mg", Iron: "1.2mg", VitaminC: "35mg",
					},
				},
				ServingInfo: "約 1 碗 (相當於 1/3 成人份)",
				Steps: []string{
					"將所有蔬菜洗淨切絲。",
					"熱鍋下少許油，放入蔬菜快炒。",
					"炒至蔬菜軟化即可起鍋。",
				},
				Time: "15 分鐘",
				AdultsMenu: model.AdultsMenu{
					Parallel: model.AdultsMenuOption{
						Title: "大人版：宮保時蔬",
						Desc:  "利用相同的蔬菜，加入乾辣椒、花椒、醬油等調味，做成重口味的宮保風味。",
						Steps: []string{
							"蔬菜切段，乾辣椒剪段備用。",
							"熱鍋下油，爆香乾辣椒和花椒。",
							"放入蔬菜大火快炒，加入醬油、糖調味。",
							"起鍋前撒上花生米即可。",
						},
					},
					Remix: model.AdultsMenuOption{
						Title: "加工版：時蔬炒蛋",
						Desc:  "將寶寶的清炒時蔬加入雞蛋和蔥花，做成更豐富的炒蛋料理。",
						Steps: []string{
							"將做好的清炒時蔬盛起備用。",
							"雞蛋打散，加入蔥花。",
							"熱鍋下油，倒入蛋液炒至半熟。",
							"加入清炒時蔬一起炒勻即可。",
						},
					},
				},
				SearchKeywords: "清炒時蔬 幼兒食譜 中式",
			},
			{
				Style:       model.StyleWestern,
				Title:       "什錦烘蛋",
				Ingredients: frittataIngredients,
				Nutrition: model.NutritionInfo{
					Calories: 280,
					Tags:     []string{"蛋白質", "鈣質", "維生素A"},
					Benefit:  "營養均衡，富含優質蛋白質與鈣質，有助於寶寶骨骼發育！",
					Macros:   model.Macros{Protein: "18g", Carbs: "12g", Fat: "18g"},
					Micronutrients: &model.Micronutrients{
						Calcium: "180mg", Iron: "2.8mg", VitaminC: "15mg",
					},
				},
				ServingInfo: "約 1 份 (相當於 1/2 成人份)",
				Steps: []string{
					"將蔬菜切碎備用。",
					"雞蛋打散，加入蔬菜和起司絲拌勻。",
					"熱鍋下油，倒入蛋液，小火烘至兩面金黃即可。",
				},
				Time: "20 分鐘",
				AdultsMenu: model.AdultsMenu{
					Parallel: model.AdultsMenuOption{
						Title: "大人版：西班牙烘蛋",
						Desc:  "使用相同食材，但加入馬鈴薯、洋蔥，做成更豐盛的西班牙烘蛋。",
						Steps: []string{
							"馬鈴薯切片，洋蔥切絲，用油炒軟。",
							"雞蛋打散，加入炒好的蔬菜和起司。",
							"平底鍋下油，倒入蛋液，小火慢煎。",
							"翻面煎至兩面金黃，撒上黑胡椒即可。",
						},
					},
					Remix: model.AdultsMenuOption{
						Title: "加工版：烘蛋三明治",
						Desc:  "將做好的烘蛋夾入吐司，加入生菜和番茄，做成營養三明治。",
						Steps: []string{
							"將烘蛋切成適合大小。",
							"吐司烤至微焦。",
							"依序放入生菜、烘蛋、番茄片。",
							"對半切開即可享用。",
						},
					},
				},
				SearchKeywords: "什錦烘蛋 幼兒食譜 西式",
			},
			{
				Style: model.StyleJapanese,
				Title: "南瓜雞肉粥",
				Ingredients: []model.IngredientItem{
					{Name: "南瓜", Amount: "100g"},
					{Name: "雞胸肉", Amount: "50g"},
					{Name: "白米", Amount: "50g"},
					{Name: "高湯", Amount: "200ml"},
				},
				Nutrition: model.NutritionInfo{
					Calories: 200,
					Tags:     []string{"β-胡蘿蔔素", "優質蛋白", "碳水化合物"},
					Benefit:  "營養豐富，適合成長中的寶寶！南瓜含有豐富的β-胡蘿蔔素，有助於視力發育！",
					Macros:   model.Macros{Protein: "15g", Carbs: "30g", Fat: "8g"},
				},
				ServingInfo: "約 1 碗 (相當於 1/3 成人份)",
				Steps: []string{
					"南瓜去皮切塊，雞胸肉切丁。",
					"白米洗淨，與所有食材一起放入電鍋。",
					"加入高湯，外鍋加一杯水，按下開關。",
					"蒸熟後用湯匙壓成泥狀即可。",
				},
				Time: "40 分鐘",
				AdultsMenu: model.AdultsMenu{
					Parallel: model.AdultsMenuOption{
						Title: "大人版：南瓜雞肉咖哩",
						Desc:  "使用相同的南瓜和雞肉，但做成日式咖哩風味，更適合大人口味。",
						Steps: []string{
							"南瓜和雞肉切塊，洋蔥切絲。",
							"熱鍋下油，炒香洋蔥和雞肉。",
							"加入南瓜塊，倒入水煮軟。",
							"加入咖哩塊，煮至濃稠即可。",
						},
					},
					Remix: model.AdultsMenuOption{
						Title: "加工版：焗烤南瓜雞肉燉飯",
						Desc:  "將寶寶的粥底加入起司、黑胡椒，放入烤箱焗烤，做成大人版燉飯。",
						Steps: []string{
							"將做好的南瓜雞肉粥盛入烤盤。",
							"撒上起司絲和黑胡椒。",
							"烤箱預熱 200 度，烤 10 分鐘。",
							"表面金黃即可出爐。",
						},
					},
				},
				SearchKeywords: "南瓜雞肉粥 幼兒食譜 日式",
			},
		},
	}
}

// nutritionTemplate pairs deny-list-free keywords with a fixed estimate
type nutritionTemplate struct {
	keywords []string
	info     model.NutritionInfo
}

// Ordering matters: the first keyword hit wins, so the more specific
// protein templates come before the broad vegetable one.
var nutritionTemplates = []nutritionTemplate{
	{
		keywords: []string{"粥", "飯", "rice", "porridge", "congee"},
		info: model.NutritionInfo{
			Calories: 250,
			Tags:     []string{"碳水化合物", "易消化"},
			Benefit:  "富含碳水化合物，提供寶寶成長所需的能量。",
			Macros:   model.Macros{Protein: "8g", Carbs: "45g", Fat: "5g"},
			Micronutrients: &model.Micronutrients{
				Calcium: "50mg", Iron: "1.5mg", VitaminC: "5mg",
			},
		},
	},
	{
		keywords: []string{"蛋", "雞蛋", "egg"},
		info: model.NutritionInfo{
			Calories: 180,
			Tags:     []string{"優質蛋白", "高營養"},
			Benefit:  "富含優質蛋白質，有助於寶寶肌肉發展。",
			Macros:   model.Macros{Protein: "12g", Carbs: "2g", Fat: "14g"},
			Micronutrients: &model.Micronutrients{
				Calcium: "50mg", Iron: "1.8mg", VitaminC: "0mg",
			},
		},
	},
	{
		keywords: []string{"肉", "雞", "魚", "meat", "chicken", "fish", "pork", "beef"},
		info: model.NutritionInfo{
			Calories: 350,
			Tags:     []string{"高蛋白", "鐵質"},
			Benefit:  "富含蛋白質和鐵質，有助於寶寶成長發育。",
			Macros:   model.Macros{Protein: "25g", Carbs: "5g", Fat: "20g"},
			Micronutrients: &model.Micronutrients{
				Calcium: "30mg", Iron: "3.5mg", VitaminC: "0mg",
			},
		},
	},
	{
		keywords: []string{"菜", "蔬菜", "vegetable", "salad"},
		info: model.NutritionInfo{
			Calories: 80,
			Tags:     []string{"維生素", "纖維質"},
			Benefit:  "富含維生素和纖維質，有助於消化和免疫力。",
			Macros:   model.Macros{Protein: "3g", Carbs: "15g", Fat: "2g"},
			Micronutrients: &model.Micronutrients{
				Calcium: "60mg", Iron: "1.2mg", VitaminC: "45mg",
			},
		},
	},
}

// genericNutrition is the balanced default when no keyword matches
var genericNutrition = model.NutritionInfo{
	Calories: 300,
	Tags:     []string{"營養均衡"},
	Benefit:  "這是一道營養均衡的餐點。",
	Macros:   model.Macros{Protein: "15g", Carbs: "40g", Fat: "10g"},
	Micronutrients: &model.Micronutrients{
		Calcium: "100mg", Iron: "2.0mg", VitaminC: "20mg",
	},
}

// FallbackNutrition produces the deterministic nutrition estimate for a
// meal name by keyword matching against the fixed templates.
func FallbackNutrition(q types.MealQuery) *model.NutritionInfo {
	name := strings.ToLower(strings.TrimSpace(q.Text))
	for _, tpl := range nutritionTemplates {
		for _, kw := range tpl.keywords {
			if strings.Contains(name, kw) {
				info := tpl.info
				return &info
			}
		}
	}
	info := genericNutrition
	return &info
}
