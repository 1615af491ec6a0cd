package i18n

var english = map[string]string{
	"mainTitle":                 "Aura AI",
	"subtitle":                  "Turn one portrait into a full photoshoot.",
	"category_optional_presets": "Optional presets",
	"category_trending":         "Trending",
	"category_artistic":         "Artistic styles",
	"optionalPresetsNote":       "Poses and expressions that keep your original background and outfit.",
	"realisticStyleNote":        "Artistic styles may look less photorealistic.",
	"selectionCounter":          "{count}/{max} selected",
	"selectionLimitError":       "You can select up to {max} styles.",
	"clearSelection":            "Clear selection",
	"customPromptTitle":         "Custom prompt",
	"customPromptPlaceholder":   "Describe any extra style or pose...",
	"generateButton":            "Generate",
	"generatingButton":          "Generating...",
	"generatingPlaceholder":     "Generating...",
	"generatedPortraitsTitle":   "Your generated portraits",
	"generatedImage":            "Generated image",
	"backToCustomizeButton":     "Back to customize",
	"changeImageButton":         "Change image",
	"uploadPrompt":              "Upload a portrait photo to get started.",
	"yourPhotoTitle":            "Your photo",
	"customizeTitle":            "Customize",
	"customizeSubtitle":         "Pick up to 5 styles or write your own prompt.",
	"errorPrefix":               "Something went wrong",
	"languageChanged":           "Language set to English.",
	"photoReceived":             "Photo received. Pick your styles.",
	"albumFirstPhotoOnly":       "Only the first photo of an album is used.",
	"promptSaved":               "Custom prompt saved.",
	"promptCleared":             "Custom prompt cleared.",
	"selectionCleared":          "Selection cleared.",
	"generatingCount":           "Generating {count} image(s), please wait...",
	"helpText":                  "Send a portrait photo, pick up to 5 styles with /styles, optionally set /prompt <text>, then /generate.\n\n/styles - open the style picker\n/prompt <text> - set a custom prompt\n/clear - clear the selection\n/generate - start generating\n/back - return to customizing\n/lang - switch language",
	"unknownCommand":            "Unknown command. Use /help.",
	"notYourMenu":               "This menu belongs to someone else.",
	"photoDownloadFailed":       "Could not download the photo. Please send it again.",

	"error_no_image":             "Please upload an image first.",
	"error_env_var_not_set":      "The application is misconfigured. Please try again later.",
	"error_no_candidates":        "The AI did not return any results. The request may have been blocked.",
	"error_no_image_in_response": "The AI response did not contain an image. Try a different style.",
	"error_upstream":             "The AI model could not generate the images.",
	"error_gemini_communication": "Could not communicate with the AI service. Please try again.",
	"error_unknown":              "An unknown error occurred.",
	"error_busy":                 "A generation is already in progress.",
	"error_unknown_style":        "That style does not exist.",
	"error_invalid_image":        "Please upload a PNG, JPEG or WebP image.",
	"error_delivery":             "Could not send a generated image.",

	"style_smiling_portrait":      "Smiling portrait",
	"style_serious_close_up":      "Serious close-up",
	"style_thoughtful_look":       "Thoughtful look",
	"style_side_profile":          "Side profile",
	"style_head_tilt":             "Head tilt",
	"style_playful_wink":          "Playful wink",
	"style_soft_smile":            "Soft smile",
	"style_over_shoulder_glance":  "Over-the-shoulder glance",
	"style_eyes_closed":           "Eyes closed",
	"style_hand_on_chin":          "Hand on chin",
	"style_peeking":               "Peeking",
	"style_hair_in_motion":        "Hair in motion",
	"style_hand_towards_camera":   "Hand towards camera",
	"style_confident_full_body":   "Confident full body",
	"style_walking_pose":          "Walking pose",
	"style_hands_in_pockets":      "Hands in pockets",
	"style_arms_crossed":          "Arms crossed",
	"style_hand_on_hip":           "Hand on hip",
	"style_leaning_pose":          "Leaning pose",
	"style_looking_down":          "Looking down",
	"style_sitting_on_floor":      "Sitting on the floor",
	"style_jumping_in_air":        "Jumping in the air",
	"style_leaning_forward":       "Leaning forward",
	"style_fixing_hair":           "Fixing hair",
	"style_dynamic_pose":          "Dynamic pose",
	"style_candid_moment":         "Candid moment",
	"style_looking_over_shoulder": "Looking over shoulder",
	"style_adjusting_jacket":      "Adjusting jacket",
	"style_dancing_pose":          "Dancing pose",
	"style_twirling_shot":         "Twirling shot",
	"style_shielding_eyes":        "Shielding eyes",
	"style_tying_shoelaces":       "Tying shoelaces",
	"style_mini_model":            "Mini figurine",
	"style_photoshoot_with_lotus": "Photoshoot with lotus",
	"style_mid_autumn_lantern":    "Mid-Autumn lantern",
	"style_oil_painting":          "Oil painting",
	"style_anime":                 "Anime",
	"style_pixel_art":             "Pixel art",
	"style_ghibli":                "Ghibli",
	"style_wuxia":                 "Wuxia",
	"style_gothic":                "Gothic",
}

var vietnamese = map[string]string{
	"mainTitle":                 "Aura AI",
	"subtitle":                  "Biến một bức chân dung thành cả buổi chụp ảnh.",
	"category_optional_presets": "Mẫu có sẵn",
	"category_trending":         "Xu hướng",
	"category_artistic":         "Phong cách nghệ thuật",
	"optionalPresetsNote":       "Các tư thế và biểu cảm giữ nguyên bối cảnh và trang phục gốc.",
	"realisticStyleNote":        "Phong cách nghệ thuật có thể kém chân thực hơn.",
	"selectionCounter":          "Đã chọn {count}/{max}",
	"selectionLimitError":       "Bạn chỉ có thể chọn tối đa {max} phong cách.",
	"clearSelection":            "Bỏ chọn tất cả",
	"customPromptTitle":         "Mô tả tùy chỉnh",
	"customPromptPlaceholder":   "Mô tả thêm phong cách hoặc tư thế...",
	"generateButton":            "Tạo ảnh",
	"generatingButton":          "Đang tạo...",
	"generatingPlaceholder":     "Đang tạo...",
	"generatedPortraitsTitle":   "Ảnh chân dung của bạn",
	"generatedImage":            "Ảnh đã tạo",
	"backToCustomizeButton":     "Quay lại tùy chỉnh",
	"changeImageButton":         "Đổi ảnh",
	"uploadPrompt":              "Tải lên một ảnh chân dung để bắt đầu.",
	"yourPhotoTitle":            "Ảnh của bạn",
	"customizeTitle":            "Tùy chỉnh",
	"customizeSubtitle":         "Chọn tối đa 5 phong cách hoặc tự viết mô tả.",
	"errorPrefix":               "Đã xảy ra lỗi",
	"languageChanged":           "Đã chuyển sang tiếng Việt.",
	"photoReceived":             "Đã nhận ảnh. Hãy chọn phong cách.",
	"albumFirstPhotoOnly":       "Chỉ ảnh đầu tiên trong album được sử dụng.",
	"promptSaved":               "Đã lưu mô tả tùy chỉnh.",
	"promptCleared":             "Đã xóa mô tả tùy chỉnh.",
	"selectionCleared":          "Đã bỏ chọn tất cả.",
	"generatingCount":           "Đang tạo {count} ảnh, vui lòng chờ...",
	"helpText":                  "Gửi một ảnh chân dung, chọn tối đa 5 phong cách bằng /styles, có thể đặt /prompt <mô tả>, rồi /generate.\n\n/styles - mở bảng chọn phong cách\n/prompt <mô tả> - đặt mô tả tùy chỉnh\n/clear - bỏ chọn tất cả\n/generate - bắt đầu tạo ảnh\n/back - quay lại tùy chỉnh\n/lang - đổi ngôn ngữ",
	"unknownCommand":            "Lệnh không hợp lệ. Dùng /help.",
	"notYourMenu":               "Bảng chọn này thuộc về người khác.",
	"photoDownloadFailed":       "Không tải được ảnh. Vui lòng gửi lại.",

	"error_no_image":             "Vui lòng tải ảnh lên trước.",
	"error_env_var_not_set":      "Ứng dụng chưa được cấu hình đúng. Vui lòng thử lại sau.",
	"error_no_candidates":        "AI không trả về kết quả nào. Yêu cầu có thể đã bị chặn.",
	"error_no_image_in_response": "Phản hồi của AI không chứa ảnh. Hãy thử phong cách khác.",
	"error_upstream":             "Mô hình AI không thể tạo ảnh.",
	"error_gemini_communication": "Không thể kết nối với dịch vụ AI. Vui lòng thử lại.",
	"error_unknown":              "Đã xảy ra lỗi không xác định.",
	"error_busy":                 "Đang có một lượt tạo ảnh chạy.",
	"error_unknown_style":        "Phong cách này không tồn tại.",
	"error_invalid_image":        "Vui lòng tải lên ảnh PNG, JPEG hoặc WebP.",
	"error_delivery":             "Không gửi được ảnh đã tạo.",

	"style_smiling_portrait":      "Chân dung mỉm cười",
	"style_serious_close_up":      "Cận cảnh nghiêm nghị",
	"style_thoughtful_look":       "Ánh nhìn trầm tư",
	"style_side_profile":          "Góc nghiêng",
	"style_head_tilt":             "Nghiêng đầu",
	"style_playful_wink":          "Nháy mắt tinh nghịch",
	"style_soft_smile":            "Nụ cười nhẹ",
	"style_over_shoulder_glance":  "Liếc qua vai",
	"style_eyes_closed":           "Nhắm mắt",
	"style_hand_on_chin":          "Tay chống cằm",
	"style_peeking":               "Nhìn qua kẽ tay",
	"style_hair_in_motion":        "Tóc bay",
	"style_hand_towards_camera":   "Đưa tay về phía máy ảnh",
	"style_confident_full_body":   "Toàn thân tự tin",
	"style_walking_pose":          "Dáng đang bước",
	"style_hands_in_pockets":      "Tay đút túi",
	"style_arms_crossed":          "Khoanh tay",
	"style_hand_on_hip":           "Tay chống hông",
	"style_leaning_pose":          "Dáng tựa",
	"style_looking_down":          "Nhìn xuống",
	"style_sitting_on_floor":      "Ngồi trên sàn",
	"style_jumping_in_air":        "Bật nhảy",
	"style_leaning_forward":       "Nghiêng người về trước",
	"style_fixing_hair":           "Vuốt tóc",
	"style_dynamic_pose":          "Tư thế năng động",
	"style_candid_moment":         "Khoảnh khắc tự nhiên",
	"style_looking_over_shoulder": "Ngoái nhìn qua vai",
	"style_adjusting_jacket":      "Chỉnh áo khoác",
	"style_dancing_pose":          "Dáng nhảy múa",
	"style_twirling_shot":         "Xoay người",
	"style_shielding_eyes":        "Che nắng",
	"style_tying_shoelaces":       "Buộc dây giày",
	"style_mini_model":            "Mô hình thu nhỏ",
	"style_photoshoot_with_lotus": "Chụp ảnh với hoa sen",
	"style_mid_autumn_lantern":    "Lồng đèn Trung Thu",
	"style_oil_painting":          "Tranh sơn dầu",
	"style_anime":                 "Anime",
	"style_pixel_art":             "Pixel art",
	"style_ghibli":                "Ghibli",
	"style_wuxia":                 "Võ hiệp",
	"style_gothic":                "Gothic",
}
