package catalog

// Prompt texts are sent to the model as-is; do not reword them.

var poses = []StyleOption{
	{ID: "smiling_portrait", Prompt: "A portrait of the person from the original photo, but they are smiling warmly at the camera. Maintain the exact same background, lighting, and overall style as the original image."},
	{ID: "serious_close_up", Prompt: "A dramatic close-up shot focusing on the person's face, with a serious and confident expression. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "thoughtful_look", Prompt: "A three-quarter portrait of the person from the original photo, but they are looking thoughtfully away from the camera, into the distance. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "side_profile", Prompt: "A portrait of the person from the original photo taken from a side profile angle. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "head_tilt", Prompt: "A portrait of the person from the original photo, with their head tilted slightly, showing a curious and engaging expression. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "playful_wink", Prompt: "A close-up portrait of the person from the original photo giving a playful wink to the camera. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "soft_smile", Prompt: "A portrait of the person from the original photo with a soft, gentle, closed-mouth smile. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "over_shoulder_glance", Prompt: "A close-up portrait of the person from the original photo, glancing over their shoulder towards the camera with a subtle expression. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "eyes_closed", Prompt: "A peaceful close-up portrait of the person from the original photo with their eyes gently closed, showing a serene or blissful expression. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "hand_on_chin", Prompt: "A portrait of the person from the original photo with their hand resting thoughtfully on their chin, looking pensive or creative. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "peeking", Prompt: "A playful portrait of the person from the original photo peeking through the gaps in their fingers, which are covering their face. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "hair_in_motion", Prompt: "A dynamic photo of the person from the original photo where their hair is in motion, as if caught in a gentle breeze or during a turn. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "hand_towards_camera", Prompt: "A dynamic photo where the person from the original photo is reaching one hand out towards the camera in a friendly, inviting gesture. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "confident_full_body", Prompt: "A full-body shot of the person from the original photo, showing their complete outfit. They should be standing in a relaxed but confident pose. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "walking_pose", Prompt: "A full-body shot of the person from the original photo, captured as if they are walking confidently. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "hands_in_pockets", Prompt: "A medium shot of the person from the original photo, standing casually with their hands in their pockets. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "arms_crossed", Prompt: "A medium shot of the person from the original photo, with their arms crossed confidently, looking directly at the camera. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "hand_on_hip", Prompt: "A three-quarter shot of the person from the original photo with one hand placed confidently on their hip. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "leaning_pose", Prompt: "A full-body shot of the person from the original photo, leaning casually against an unseen object, looking relaxed. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "looking_down", Prompt: "A medium shot of the person from the original photo looking down with a gentle, introspective expression. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "sitting_on_floor", Prompt: "A full-body shot of the person from the original photo sitting casually on the floor, in a relaxed pose. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "jumping_in_air", Prompt: "An energetic full-body shot of the person from the original photo captured mid-jump, expressing joy or excitement. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "leaning_forward", Prompt: "A medium shot of the person from the original photo leaning forward towards the camera, as if sharing a secret, with an engaging expression. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "fixing_hair", Prompt: "A candid medium shot of the person from the original photo in the middle of casually fixing or running a hand through their hair. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "dynamic_pose", Prompt: "A photo of the person from the original photo in a more dynamic or active pose, like turning, walking, or interacting with the environment. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "candid_moment", Prompt: "A candid-style photo of the person from the original photo, as if they were captured in a natural, unposed moment, perhaps adjusting their clothing or hair. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "looking_over_shoulder", Prompt: "A photo of the person from the original photo, looking back over their shoulder at the camera with a slight smile. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "adjusting_jacket", Prompt: "A candid-style photo of the person from the original photo in the middle of adjusting their jacket, collar, or sleeve. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "dancing_pose", Prompt: "A dynamic full-body shot of the person from the original photo in a fluid dancing pose, expressing movement and joy. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "twirling_shot", Prompt: "A dynamic full-body shot of the person from the original photo captured mid-twirl, with their clothing and hair showing motion. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "shielding_eyes", Prompt: "A photo of the person from the original photo using their hand to shield their eyes from a bright light source (like the sun), creating a natural, candid look. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
	{ID: "tying_shoelaces", Prompt: "A candid shot of the person from the original photo bending down or crouching to tie their shoelaces. Maintain the exact same background, clothing, lighting, and overall style as the original image."},
}

var trending = []StyleOption{
	{ID: "mini_model", Prompt: "Create a 1/7 scale commercialized figurine of the characters in the picture, in a realistic style, in a real environment. The figurine is placed on a computer desk. The figurine has a round transparent acrylic base. The content on the computer screen is the Zbrush modeling process of this figurine. Next to the computer screen is a BANDAI-style toy packaging box printed with the original artwork. The packaging features two-dimensional flat illustrations."},
	{ID: "photoshoot_with_lotus", Prompt: "Tạo một bức ảnh chụp chân thật và tự nhiên của người trong ảnh gốc, trong bối cảnh \"Bên cạnh hoa sen hồng\". YÊU CẦU QUAN TRỌNG NHẤT: Phải giữ lại chính xác tuyệt đối 100% các đặc điểm trên khuôn mặt, đường nét, và biểu cảm của người trong ảnh gốc. Không được thay đổi hay chỉnh sửa khuôn mặt. Bức ảnh phải thể hiện được niềm tự hào dân tộc Việt Nam một cách sâu sắc. Ảnh phải có chất lượng cao, sắc nét, với tông màu đỏ của quốc kỳ làm chủ đạo nhưng vẫn giữ được sự hài hòa, tự nhiên. Tránh tạo ra ảnh theo phong cách vẽ hay hoạt hình."},
	{ID: "mid_autumn_lantern", Prompt: "Tạo một bức ảnh chụp chân thật và tự nhiên của người trong ảnh gốc, trong bối cảnh \"Cầm lồng đèn Trung Thu\". YÊU CẦU QUAN TRỌNG NHẤT: Phải giữ lại chính xác tuyệt đối 100% các đặc điểm trên khuôn mặt, đường nét, và biểu cảm của người trong ảnh gốc. Không được thay đổi hay chỉnh sửa khuôn mặt. Bức ảnh phải thể hiện được niềm tự hào dân tộc Việt Nam một cách sâu sắc. Ảnh phải có chất lượng cao, sắc nét, với tông màu đỏ của quốc kỳ làm chủ đạo nhưng vẫn giữ được sự hài hòa, tự nhiên. Tránh tạo ra ảnh theo phong cách vẽ hay hoạt hình."},
}

var artistic = []StyleOption{
	{ID: "oil_painting", Prompt: "As an oil painting, with visible brushstrokes and a classic feel."},
	{ID: "anime", Prompt: "In a vibrant anime style, with sharp lines and expressive features."},
	{ID: "pixel_art", Prompt: "As 16-bit pixel art."},
	{ID: "ghibli", Prompt: "In the style of a Ghibli Studio animation, with a whimsical and hand-drawn look."},
	{ID: "wuxia", Prompt: "In the style of a Wuxia film, with dramatic lighting, traditional Chinese martial arts attire, and an epic, cinematic feel."},
	{ID: "gothic", Prompt: "In a dark, gothic art style, with moody lighting, ornate details, and a mysterious, romantic atmosphere."},
}
